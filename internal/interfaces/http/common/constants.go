package common

const (
	// DefaultPageLimit is applied when the client omits or breaks the limit param.
	DefaultPageLimit = 20
	// MaxPageLimit caps a single page to keep payloads sane.
	MaxPageLimit = 100
	// MaxNearbyRadiusKm caps the nearby-search radius.
	MaxNearbyRadiusKm = 50.0
	// MaxAdminRequestBody limits JSON request bodies for admin building endpoints.
	MaxAdminRequestBody = 1 << 20
)
