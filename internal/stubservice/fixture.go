package stubservice

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/TemirB/internetmarke/internal/domain"
)

//go:embed fixture.yaml
var defaultFixture []byte

// Fixture is the initial state of the stub service.
type Fixture struct {
	FirstShopOrderID   int64 `yaml:"firstShopOrderId"`
	LegacyBalanceField bool  `yaml:"legacyBalanceField"`

	Users       []FixtureUser       `yaml:"users"`
	Products    []FixtureProduct    `yaml:"products"`
	PageFormats []FixturePageFormat `yaml:"pageFormats"`
}

type FixtureUser struct {
	Username             string `yaml:"username"`
	Password             string `yaml:"password"`
	Balance              int64  `yaml:"balance"`
	ShowTermAndCondition bool   `yaml:"showTermAndCondition"`
	InfoMessage          string `yaml:"infoMessage"`
}

type FixtureProduct struct {
	Code    int    `yaml:"code"`
	Name    string `yaml:"name"`
	Price   int64  `yaml:"price"`
	Tracked bool   `yaml:"tracked"`
}

type FixturePageFormat struct {
	ID                int     `yaml:"id"`
	Name              string  `yaml:"name"`
	Description       string  `yaml:"description"`
	PageType          string  `yaml:"pageType"`
	IsAddressPossible bool    `yaml:"isAddressPossible"`
	IsImagePossible   bool    `yaml:"isImagePossible"`
	Orientation       string  `yaml:"orientation"`
	Width             float64 `yaml:"width"`
	Height            float64 `yaml:"height"`
	LabelsX           int     `yaml:"labelsX"`
	LabelsY           int     `yaml:"labelsY"`
}

func (f FixturePageFormat) toDomain() domain.PageFormat {
	return domain.PageFormat{
		ID: f.ID,
		PageFormatSpec: domain.PageFormatSpec{
			Name:              f.Name,
			Description:       f.Description,
			PageType:          f.PageType,
			IsAddressPossible: f.IsAddressPossible,
			IsImagePossible:   f.IsImagePossible,
			Layout: domain.PageLayout{
				Size:        domain.Dimension{X: f.Width, Y: f.Height},
				Orientation: f.Orientation,
				LabelCount:  domain.LabelCount{LabelX: f.LabelsX, LabelY: f.LabelsY},
			},
		},
	}
}

// DefaultFixture returns the embedded fixture.
func DefaultFixture() (Fixture, error) {
	return ParseFixture(defaultFixture)
}

// LoadFixture reads a fixture file, falling back to the embedded one when
// path is empty.
func LoadFixture(path string) (Fixture, error) {
	if path == "" {
		return DefaultFixture()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("failed to read fixture %q: %w", path, err)
	}
	return ParseFixture(data)
}

func ParseFixture(data []byte) (Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Fixture{}, fmt.Errorf("failed to parse fixture: %w", err)
	}
	if f.FirstShopOrderID <= 0 {
		f.FirstShopOrderID = 1000
	}
	return f, nil
}
