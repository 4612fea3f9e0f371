package consts

const (
	// ClampTopProductsMin / Max bound the externally supplied top-products
	// limit; anything outside falls back to the configured default.
	ClampTopProductsMin = 1
	ClampTopProductsMax = 100
)
