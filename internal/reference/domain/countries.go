package domain

import "strings"

const (
	AE CountryCode = "AE"
	AT CountryCode = "AT"
	AU CountryCode = "AU"
	BE CountryCode = "BE"
	BG CountryCode = "BG"
	BH CountryCode = "BH"
	BY CountryCode = "BY"
	CA CountryCode = "CA"
	CH CountryCode = "CH"
	CL CountryCode = "CL"
	CO CountryCode = "CO"
	CR CountryCode = "CR"
	CY CountryCode = "CY"
	CZ CountryCode = "CZ"
	DE CountryCode = "DE"
	DK CountryCode = "DK"
	EC CountryCode = "EC"
	EE CountryCode = "EE"
	EG CountryCode = "EG"
	ES CountryCode = "ES"
	FI CountryCode = "FI"
	FR CountryCode = "FR"
	GB CountryCode = "GB"
	GE CountryCode = "GE"
	GR CountryCode = "GR"
	HR CountryCode = "HR"
	HU CountryCode = "HU"
	ID CountryCode = "ID"
	IE CountryCode = "IE"
	IN CountryCode = "IN"
	IS CountryCode = "IS"
	IT CountryCode = "IT"
	JP CountryCode = "JP"
	KE CountryCode = "KE"
	KR CountryCode = "KR"
	KZ CountryCode = "KZ"
	LT CountryCode = "LT"
	LU CountryCode = "LU"
	LV CountryCode = "LV"
	MA CountryCode = "MA"
	MT CountryCode = "MT"
	MX CountryCode = "MX"
	MY CountryCode = "MY"
	NL CountryCode = "NL"
	NO CountryCode = "NO"
	NZ CountryCode = "NZ"
	PL CountryCode = "PL"
	PT CountryCode = "PT"
	RO CountryCode = "RO"
	RS CountryCode = "RS"
	RU CountryCode = "RU"
	SA CountryCode = "SA"
	SE CountryCode = "SE"
	SG CountryCode = "SG"
	SI CountryCode = "SI"
	SK CountryCode = "SK"
	TH CountryCode = "TH"
	TR CountryCode = "TR"
	UA CountryCode = "UA"
	US CountryCode = "US"
	VN CountryCode = "VN"
	ZA CountryCode = "ZA"
)

// Countries is the static reference table seeded into the countries table.
// Names are the common names used on legal documents.
var Countries = []Country{
	{Code: string(AE), Name: "United Arab Emirates"},
	{Code: string(AT), Name: "Austria"},
	{Code: string(AU), Name: "Australia"},
	{Code: string(BE), Name: "Belgium"},
	{Code: string(BG), Name: "Bulgaria"},
	{Code: string(BH), Name: "Bahrain"},
	{Code: string(BY), Name: "Belarus"},
	{Code: string(CA), Name: "Canada"},
	{Code: string(CH), Name: "Switzerland"},
	{Code: string(CL), Name: "Chile"},
	{Code: string(CO), Name: "Colombia"},
	{Code: string(CR), Name: "Costa Rica"},
	{Code: string(CY), Name: "Cyprus"},
	{Code: string(CZ), Name: "Czech Republic"},
	{Code: string(DE), Name: "Germany"},
	{Code: string(DK), Name: "Denmark"},
	{Code: string(EC), Name: "Ecuador"},
	{Code: string(EE), Name: "Estonia"},
	{Code: string(EG), Name: "Egypt"},
	{Code: string(ES), Name: "Spain"},
	{Code: string(FI), Name: "Finland"},
	{Code: string(FR), Name: "France"},
	{Code: string(GB), Name: "United Kingdom"},
	{Code: string(GE), Name: "Georgia"},
	{Code: string(GR), Name: "Greece"},
	{Code: string(HR), Name: "Croatia"},
	{Code: string(HU), Name: "Hungary"},
	{Code: string(ID), Name: "Indonesia"},
	{Code: string(IE), Name: "Ireland"},
	{Code: string(IN), Name: "India"},
	{Code: string(IS), Name: "Iceland"},
	{Code: string(IT), Name: "Italy"},
	{Code: string(JP), Name: "Japan"},
	{Code: string(KE), Name: "Kenya"},
	{Code: string(KR), Name: "South Korea"},
	{Code: string(KZ), Name: "Kazakhstan"},
	{Code: string(LT), Name: "Lithuania"},
	{Code: string(LU), Name: "Luxembourg"},
	{Code: string(LV), Name: "Latvia"},
	{Code: string(MA), Name: "Morocco"},
	{Code: string(MT), Name: "Malta"},
	{Code: string(MX), Name: "Mexico"},
	{Code: string(MY), Name: "Malaysia"},
	{Code: string(NL), Name: "Netherlands"},
	{Code: string(NO), Name: "Norway"},
	{Code: string(NZ), Name: "New Zealand"},
	{Code: string(PL), Name: "Poland"},
	{Code: string(PT), Name: "Portugal"},
	{Code: string(RO), Name: "Romania"},
	{Code: string(RS), Name: "Serbia"},
	{Code: string(RU), Name: "Russia"},
	{Code: string(SA), Name: "Saudi Arabia"},
	{Code: string(SE), Name: "Sweden"},
	{Code: string(SG), Name: "Singapore"},
	{Code: string(SI), Name: "Slovenia"},
	{Code: string(SK), Name: "Slovakia"},
	{Code: string(TH), Name: "Thailand"},
	{Code: string(TR), Name: "Turkey"},
	{Code: string(UA), Name: "Ukraine"},
	{Code: string(US), Name: "United States"},
	{Code: string(VN), Name: "Vietnam"},
	{Code: string(ZA), Name: "South Africa"},
}

var (
	countriesByCode = func() map[CountryCode]Country {
		m := make(map[CountryCode]Country, len(Countries))
		for _, c := range Countries {
			m[CountryCode(c.Code)] = c
		}
		return m
	}()

	codesByName = func() map[string]CountryCode {
		m := make(map[string]CountryCode, len(Countries))
		for _, c := range Countries {
			m[strings.ToLower(c.Name)] = CountryCode(c.Code)
		}
		return m
	}()
)

// CountryByCode looks up a country record by alpha-2 code.
func CountryByCode(code CountryCode) (Country, bool) {
	c, ok := countriesByCode[code]
	return c, ok
}

// CountryName returns the common name for a code, or the code itself when
// the country is not in the reference table.
func CountryName(code CountryCode) string {
	if c, ok := countriesByCode[code]; ok {
		return c.Name
	}
	return string(code)
}

// CodeByName resolves a common name (case-insensitive) to its alpha-2 code.
// An already-valid alpha-2 code resolves to itself.
func CodeByName(name string) (CountryCode, bool) {
	trimmed := strings.TrimSpace(name)
	if code := CountryCode(strings.ToUpper(trimmed)); code.Valid() {
		if _, ok := countriesByCode[code]; ok {
			return code, true
		}
	}
	code, ok := codesByName[strings.ToLower(trimmed)]
	return code, ok
}
