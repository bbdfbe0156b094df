package mod

//LookupResponse is the JSON document printed by the command line tool.
type LookupResponse struct {
	Codes   []string   `json:"codes"`
	Matched int        `json:"matched"`
	Missed  int        `json:"missed"`
	Matches []BinMatch `json:"matches,omitempty"`
}
