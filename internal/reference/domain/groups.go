package domain

// Named tax groups. A country may belong to more than one group; callers
// that treat groups as mutually exclusive fix their own evaluation order
// and must not rely on the sets being disjoint.

var euVATCountries = map[CountryCode]struct{}{
	AT: {}, BE: {}, BG: {}, CY: {}, CZ: {}, DE: {}, DK: {}, EE: {}, ES: {},
	FI: {}, FR: {}, GR: {}, HR: {}, HU: {}, IE: {}, IT: {}, LT: {}, LU: {},
	LV: {}, MT: {}, NL: {}, PL: {}, PT: {}, RO: {}, SE: {}, SI: {}, SK: {},
}

var gstCountries = map[CountryCode]struct{}{
	AU: {}, NZ: {}, SG: {},
}

var taxAllProductsCountries = map[CountryCode]struct{}{
	CH: {}, GB: {}, IS: {}, NO: {},
}

var taxDigitalProductsCountries = map[CountryCode]struct{}{
	BH: {}, BY: {}, CL: {}, CO: {}, CR: {}, EC: {}, EG: {}, GE: {}, ID: {},
	IN: {}, JP: {}, KE: {}, KR: {}, KZ: {}, MA: {}, MX: {}, MY: {}, RS: {},
	RU: {}, SA: {}, TH: {}, TR: {}, UA: {}, AE: {}, VN: {}, ZA: {},
}

// IsEUVAT reports membership in the EU VAT area.
func IsEUVAT(code CountryCode) bool {
	_, ok := euVATCountries[code]
	return ok
}

// IsGST reports membership in the GST jurisdictions group.
func IsGST(code CountryCode) bool {
	_, ok := gstCountries[code]
	return ok
}

// TaxesAllProducts reports whether the country taxes every product kind
// sold through the marketplace.
func TaxesAllProducts(code CountryCode) bool {
	_, ok := taxAllProductsCountries[code]
	return ok
}

// TaxesDigitalProducts reports whether the country taxes digital products.
func TaxesDigitalProducts(code CountryCode) bool {
	_, ok := taxDigitalProductsCountries[code]
	return ok
}
