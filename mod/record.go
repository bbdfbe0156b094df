package mod

//BinRecord is one row of the bundled bin dataset
type BinRecord struct {
	Bin         string `json:"bin"`          //BIN, 6-8位数字
	Brand       string `json:"brand"`        //visa, mastercard, etc
	CardType    string `json:"card_type"`    //卡类型, debit or credit
	CountryName string `json:"country_name"` //国家, 英文名称
	IsoCode3    string `json:"iso_code3"`
	IsoCode2    string `json:"iso_code2"`
}

//BinMatch is the positional lookup result for a single input bin.
type BinMatch struct {
	Bin    string     `json:"bin"`
	Found  bool       `json:"found"`
	Record *BinRecord `json:"record,omitempty"`
}
