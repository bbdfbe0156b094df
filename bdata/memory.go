package bdata

import (
	"runtime/debug"
	"sync"
	"time"

	"git.thinkinpower.net/bincountry/mod"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	logger "github.com/sirupsen/logrus"
)

//Database is an in-memory bin index built at most once per handle.
//After Init returns the index is read-only and safe for concurrent queries.
type Database struct {
	load    Loader
	keyFunc KeyFunc

	initOnce sync.Once
	dataMap  map[string]mod.BinRecord
	initErr  error
}

//NewDatabase returns a lazy handle; the dataset is loaded by the first query or Init.
func NewDatabase(opts ...Option) *Database {
	d := &Database{load: EmbeddedLoader(), keyFunc: DirectKey}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

//OpenDatabase returns a handle whose index is already built.
func OpenDatabase(opts ...Option) (*Database, error) {
	d := NewDatabase(opts...)
	if err := d.Init(); err != nil {
		return nil, err
	}
	return d, nil
}

//Init builds the index. Concurrent callers wait for the single build and all
//observe its result; a failed build is never retried.
func (d *Database) Init() error {
	d.initOnce.Do(d.build)
	return d.initErr
}

func (d *Database) build() {
	defer func() {
		if err := recover(); err != nil {
			logger.Errorf("build bin database panic: %v, stack: %s", err, string(debug.Stack()))
			d.dataMap = nil
			d.initErr = errors.Errorf("build bin database: %v", err)
		}
	}()
	var (
		records []mod.BinRecord
		err     error
	)
	start := time.Now()
	if records, err = d.load(); err != nil {
		logger.WithError(err).Error("初始化bin数据库失败")
		d.initErr = err
		return
	}

	dataMap := make(map[string]mod.BinRecord, len(records))
	for _, record := range records {
		//重复的bin以后出现的为准
		dataMap[d.keyFunc(record.Bin)] = record
	}
	if len(dataMap) == 0 {
		logger.Warn("bin dataset is empty, every lookup will miss")
	}
	logger.WithFields(logger.Fields{
		"rows":       humanize.Comma(int64(len(records))),
		"keys":       humanize.Comma(int64(len(dataMap))),
		"duplicates": len(records) - len(dataMap),
		"elapsed":    time.Since(start).String(),
	}).Info("bin database ready")
	d.dataMap = dataMap
}

//ISO2Codes returns the distinct isoCode2 values of the bins found in the index.
//Bins that are not indexed contribute nothing.
func (d *Database) ISO2Codes(bins []string) (mod.CodeSet, error) {
	if err := d.Init(); err != nil {
		return nil, err
	}
	result := make(mod.CodeSet)
	for _, bin := range bins {
		if record, ok := d.dataMap[d.keyFunc(bin)]; ok {
			result.Add(record.IsoCode2)
		}
	}
	return result, nil
}

//LookupEach returns one BinMatch per input bin, in input order.
func (d *Database) LookupEach(bins []string) ([]mod.BinMatch, error) {
	if err := d.Init(); err != nil {
		return nil, err
	}
	result := make([]mod.BinMatch, 0, len(bins))
	for _, bin := range bins {
		match := mod.BinMatch{Bin: bin}
		if record, ok := d.dataMap[d.keyFunc(bin)]; ok {
			match.Found = true
			match.Record = &record
		}
		result = append(result, match)
	}
	return result, nil
}

func (d *Database) Find(bin string) (mod.BinRecord, bool, error) {
	if err := d.Init(); err != nil {
		return mod.BinRecord{}, false, err
	}
	record, ok := d.dataMap[d.keyFunc(bin)]
	return record, ok, nil
}

//Len reports the number of distinct keys in the index.
func (d *Database) Len() (int, error) {
	if err := d.Init(); err != nil {
		return 0, err
	}
	return len(d.dataMap), nil
}
