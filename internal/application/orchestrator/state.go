package orchestrator

type State uint8

const (
	Unauthenticated State = iota
	Authenticating
	Authenticated
	OrderInFlight
	AuthFailed
)

func (s State) String() string {
	switch s {
	case Unauthenticated:
		return "unauthenticated"
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	case OrderInFlight:
		return "order_in_flight"
	case AuthFailed:
		return "auth_failed"
	default:
		return "unknown"
	}
}
