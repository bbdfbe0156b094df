package bdata

import (
	"git.thinkinpower.net/bincountry/mod"
)

//Loader produces the dataset rows in file order.
type Loader func() ([]mod.BinRecord, error)

type Option func(*Database)

func WithLoader(load Loader) Option {
	return func(d *Database) {
		d.load = load
	}
}

func WithKeyFunc(keyFunc KeyFunc) Option {
	return func(d *Database) {
		d.keyFunc = keyFunc
	}
}

type BinDatabase interface {
	Init() error
	ISO2Codes(bins []string) (mod.CodeSet, error)
	LookupEach(bins []string) ([]mod.BinMatch, error)
	Find(bin string) (mod.BinRecord, bool, error)
	Len() (int, error)
}

var _ BinDatabase = (*Database)(nil)

//process-wide handle over the embedded dataset, built on first use
var defaultDatabase = NewDatabase()

func Default() *Database {
	return defaultDatabase
}

//ISO2Codes queries the default database.
func ISO2Codes(bins []string) (mod.CodeSet, error) {
	return defaultDatabase.ISO2Codes(bins)
}

//Warmup builds the default database ahead of the first query.
func Warmup() error {
	return defaultDatabase.Init()
}
