package mod

import "sort"

//CodeSet is an unordered set of ISO 3166-1 alpha-2 country codes.
type CodeSet map[string]struct{}

func NewCodeSet(codes ...string) CodeSet {
	s := make(CodeSet, len(codes))
	for _, code := range codes {
		s.Add(code)
	}
	return s
}

func (s CodeSet) Add(code string) {
	s[code] = struct{}{}
}

func (s CodeSet) Contains(code string) bool {
	_, ok := s[code]
	return ok
}

func (s CodeSet) Len() int {
	return len(s)
}

//Sorted returns the codes in ascending order, for stable output.
func (s CodeSet) Sorted() []string {
	result := make([]string, 0, len(s))
	for code := range s {
		result = append(result, code)
	}
	sort.Strings(result)
	return result
}
