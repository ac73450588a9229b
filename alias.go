package redk

// Field names one of the eight canonical transaction attributes the pipeline
// outputs, independent of source-specific naming.
type Field string

// The canonical fields.
const (
	Longitude    Field = "longitude"
	Latitude     Field = "latitude"
	YearMonth    Field = "yearMonth"
	Price        Field = "price"
	Area         Field = "area"
	Address      Field = "address"
	BuildingType Field = "buildingType"
	TotalPrice   Field = "totalPrice"
)

// Fields lists every canonical field.
var Fields = []Field{Longitude, Latitude, YearMonth, Price, Area, Address, BuildingType, TotalPrice}

// AliasConfig maps each canonical field to an ordered list of acceptable
// source key names. Precedence is list order - the first key present in a row
// with a non-empty value wins. An AliasConfig is treated as immutable for the
// duration of a pipeline run.
type AliasConfig map[Field][]string

// DefaultAliases returns the alias lists for the multilingual tabular
// sources: the canonical name first, then the snake_case variants, then the
// column headers used by the Taiwan actual-price registration exports.
func DefaultAliases() AliasConfig {
	return AliasConfig{
		Longitude:    {"longitude", "lng", "lon", "x", "經度"},
		Latitude:     {"latitude", "lat", "y", "緯度"},
		YearMonth:    {"yearMonth", "year_month", "交易年月日", "交易年月", "date"},
		Price:        {"price", "unit_price", "單價元平方公尺", "單價", "每坪單價"},
		Area:         {"area", "building_area", "建物移轉總面積平方公尺", "面積"},
		Address:      {"address", "土地區段位置建物區段門牌", "土地位置建物門牌", "地址"},
		BuildingType: {"buildingType", "building_type", "建物型態"},
		TotalPrice:   {"totalPrice", "total_price", "總價元", "總價"},
	}
}

// Merge returns a copy of c with the alias lists from over replacing the
// corresponding entries. Fields absent from over keep c's lists. Neither
// argument is modified.
func (c AliasConfig) Merge(over AliasConfig) AliasConfig {
	merged := make(AliasConfig, len(c))
	for f, keys := range c {
		merged[f] = keys
	}
	for f, keys := range over {
		merged[f] = keys
	}
	return merged
}

// Resolve walks aliases in order and returns the first value in row which is
// present, non-nil, and not an empty string. The boolean reports whether any
// alias matched; callers must use it rather than testing the value, because a
// legal value may be zero.
func Resolve(row Row, aliases []string) (interface{}, bool) {
	for _, key := range aliases {
		v, ok := row.Get(key)
		if !ok || v == nil {
			continue
		}
		if s, isStr := v.(string); isStr && s == "" {
			continue
		}
		return v, true
	}
	return nil, false
}
