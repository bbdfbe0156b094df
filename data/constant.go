package data

const (
	//bundled dataset, see embed.go
	DatasetFileName = "bin-list-data.csv"

	ColumnBin         = "BIN"
	ColumnBrand       = "Brand"
	ColumnType        = "Type"
	ColumnCountryName = "CountryName"
	ColumnIsoCode3    = "isoCode3"
	ColumnIsoCode2    = "isoCode2"
)

//Columns lists the dataset header in its canonical order.
var Columns = []string{
	ColumnBin,
	ColumnBrand,
	ColumnType,
	ColumnCountryName,
	ColumnIsoCode3,
	ColumnIsoCode2,
}
