package domain

import "fmt"

// OutputFormat is the media the produced voucher artifact is rendered in.
type OutputFormat string

const (
	FormatPDF OutputFormat = "PDF"
	FormatPNG OutputFormat = "PNG"
)

// OutputFormats lists every supported output format.
func OutputFormats() []OutputFormat {
	return []OutputFormat{FormatPDF, FormatPNG}
}

func ParseOutputFormat(s string) (OutputFormat, error) {
	for _, f := range OutputFormats() {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

type VoucherLayout string

const (
	LayoutFrankingZone VoucherLayout = "FrankingZone"
	LayoutAddressZone  VoucherLayout = "AddressZone"
)

// PageFormat is a paper/layout option required when producing a PDF voucher.
// The id is the identity; all other fields live in the embedded spec.
type PageFormat struct {
	ID int `json:"id"`
	PageFormatSpec
}

type PageFormatSpec struct {
	Name              string     `json:"name"`
	Description       string     `json:"description,omitempty"`
	PageType          string     `json:"pageType,omitempty"`
	IsAddressPossible bool       `json:"isAddressPossible"`
	IsImagePossible   bool       `json:"isImagePossible"`
	Layout            PageLayout `json:"pageLayout"`
}

type PageLayout struct {
	Size         Dimension  `json:"size"`
	Orientation  string     `json:"orientation,omitempty"`
	Margin       Margin     `json:"margin"`
	LabelSpacing Dimension  `json:"labelSpacing"`
	LabelCount   LabelCount `json:"labelCount"`
}

type Dimension struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Margin struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
}

type LabelCount struct {
	LabelX int `json:"labelX"`
	LabelY int `json:"labelY"`
}
