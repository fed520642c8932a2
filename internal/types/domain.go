package types

// ------------------------------
// Core Domain Entities
// ------------------------------

// Codes holds the ONS/GSS codes behind the human-readable fields of a Postcode.
type Codes struct {
	AdminDistrict             string `json:"admin_district,omitempty"`
	AdminCounty               string `json:"admin_county,omitempty"`
	AdminWard                 string `json:"admin_ward,omitempty"`
	Parish                    string `json:"parish,omitempty"`
	ParliamentaryConstituency string `json:"parliamentary_constituency,omitempty"`
	CCG                       string `json:"ccg,omitempty"`
	CCGID                     string `json:"ccg_id,omitempty"`
	CED                       string `json:"ced,omitempty"`
	NUTS                      string `json:"nuts,omitempty"`
	LSOA                      string `json:"lsoa,omitempty"`
	MSOA                      string `json:"msoa,omitempty"`
	LAU2                      string `json:"lau2,omitempty"`
}

// Postcode is a full postcode record. Longitude/Latitude are pointers because
// the service returns null for a small number of postcodes with no geolocation.
type Postcode struct {
	Postcode                  string   `json:"postcode"`
	Quality                   int      `json:"quality,omitempty"`
	Eastings                  int      `json:"eastings,omitempty"`
	Northings                 int      `json:"northings,omitempty"`
	Country                   string   `json:"country,omitempty"`
	NHSHa                     string   `json:"nhs_ha,omitempty"`
	Longitude                 *float64 `json:"longitude,omitempty"`
	Latitude                  *float64 `json:"latitude,omitempty"`
	EuropeanElectoralRegion   string   `json:"european_electoral_region,omitempty"`
	PrimaryCareTrust          string   `json:"primary_care_trust,omitempty"`
	Region                    string   `json:"region,omitempty"`
	LSOA                      string   `json:"lsoa,omitempty"`
	MSOA                      string   `json:"msoa,omitempty"`
	Incode                    string   `json:"incode,omitempty"`
	Outcode                   string   `json:"outcode,omitempty"`
	ParliamentaryConstituency string   `json:"parliamentary_constituency,omitempty"`
	AdminDistrict             string   `json:"admin_district,omitempty"`
	Parish                    string   `json:"parish,omitempty"`
	AdminCounty               string   `json:"admin_county,omitempty"`
	AdminWard                 string   `json:"admin_ward,omitempty"`
	CED                       string   `json:"ced,omitempty"`
	CCG                       string   `json:"ccg,omitempty"`
	NUTS                      string   `json:"nuts,omitempty"`
	Codes                     Codes    `json:"codes,omitempty"`

	// Distance in metres from the query point; present only on reverse
	// geocoding and nearest lookups.
	Distance float64 `json:"distance,omitempty"`
}

// Outcode is the aggregated record for an outward code. Administrative fields
// are lists because an outcode can span several districts.
type Outcode struct {
	Outcode       string   `json:"outcode"`
	Longitude     *float64 `json:"longitude,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Eastings      int      `json:"eastings,omitempty"`
	Northings     int      `json:"northings,omitempty"`
	AdminDistrict []string `json:"admin_district,omitempty"`
	AdminCounty   []string `json:"admin_county,omitempty"`
	AdminWard     []string `json:"admin_ward,omitempty"`
	Parish        []string `json:"parish,omitempty"`
	Country       []string `json:"country,omitempty"`

	Distance float64 `json:"distance,omitempty"`
}

// Place is an OS Open Names place record.
type Place struct {
	Code                string   `json:"code"`
	Name1               string   `json:"name_1"`
	Name1Lang           string   `json:"name_1_lang,omitempty"`
	Name2               string   `json:"name_2,omitempty"`
	Name2Lang           string   `json:"name_2_lang,omitempty"`
	LocalType           string   `json:"local_type,omitempty"`
	Outcode             string   `json:"outcode,omitempty"`
	CountyUnitary       string   `json:"county_unitary,omitempty"`
	CountyUnitaryType   string   `json:"county_unitary_type,omitempty"`
	DistrictBorough     string   `json:"district_borough,omitempty"`
	DistrictBoroughType string   `json:"district_borough_type,omitempty"`
	Region              string   `json:"region,omitempty"`
	Country             string   `json:"country,omitempty"`
	Longitude           *float64 `json:"longitude,omitempty"`
	Latitude            *float64 `json:"latitude,omitempty"`
	Eastings            int      `json:"eastings,omitempty"`
	Northings           int      `json:"northings,omitempty"`
	MinEastings         int      `json:"min_eastings,omitempty"`
	MinNorthings        int      `json:"min_northings,omitempty"`
	MaxEastings         int      `json:"max_eastings,omitempty"`
	MaxNorthings        int      `json:"max_northings,omitempty"`
}

// TerminatedPostcode carries termination metadata for a retired postcode.
type TerminatedPostcode struct {
	Postcode        string   `json:"postcode"`
	YearTerminated  int      `json:"year_terminated"`
	MonthTerminated int      `json:"month_terminated"`
	Longitude       *float64 `json:"longitude,omitempty"`
	Latitude        *float64 `json:"latitude,omitempty"`
}

// ScottishCodes holds the GSS codes attached to a Scottish postcode record.
type ScottishCodes struct {
	ScottishParliamentaryConstituency string `json:"scottish_parliamentary_constituency,omitempty"`
}

// ScottishPostcode carries Scottish Postcode Directory attributes.
type ScottishPostcode struct {
	Postcode                          string        `json:"postcode"`
	ScottishParliamentaryConstituency string        `json:"scottish_parliamentary_constituency,omitempty"`
	Codes                             ScottishCodes `json:"codes,omitempty"`
}
