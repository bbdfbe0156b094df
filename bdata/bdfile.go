package bdata

import (
	"bytes"
	"encoding/csv"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"git.thinkinpower.net/bincountry/data"
	"git.thinkinpower.net/bincountry/mod"
	"github.com/pkg/errors"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

//EmbeddedLoader reads the dataset bundled into the binary.
func EmbeddedLoader() Loader {
	return func() ([]mod.BinRecord, error) {
		return ReadRecords(data.FS, data.DatasetFileName)
	}
}

//FileLoader reads a dataset from disk, using the same parser as the bundled one.
func FileLoader(path string) Loader {
	return func() ([]mod.BinRecord, error) {
		return ReadRecords(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	}
}

//ReadRecords reads and parses the dataset stored as name in fsys.
func ReadRecords(fsys fs.FS, name string) ([]mod.BinRecord, error) {
	var (
		raw []byte
		err error
	)
	if raw, err = fs.ReadFile(fsys, name); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(ErrResourceMissing, "%s", name)
		}
		return nil, errors.Wrapf(err, "read %s", name)
	}
	return ParseRecords(raw)
}

//ParseRecords turns the raw csv bytes into records, in file order.
//Duplicate bins are kept; the index decides which one wins.
func ParseRecords(raw []byte) ([]mod.BinRecord, error) {
	if offset := invalidUTF8Offset(raw); offset >= 0 {
		return nil, &DecodeError{Offset: offset}
	}
	raw = bytes.TrimPrefix(raw, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(raw))
	reader.ReuseRecord = true

	var (
		header  []string
		columns columnIndex
		err     error
	)
	if header, err = reader.Read(); err != nil {
		if err == io.EOF {
			return nil, &ParseError{Line: 1, Err: ErrEmptyDataset}
		}
		return nil, toParseError(err)
	}
	if columns, err = indexColumns(header); err != nil {
		return nil, err
	}

	result := make([]mod.BinRecord, 0, bytes.Count(raw, []byte{'\n'}))
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, toParseError(err)
		}
		result = append(result, columns.record(row))
	}
	return result, nil
}

//columnIndex maps each data.Columns entry to its position in the header.
type columnIndex [6]int

func indexColumns(header []string) (columnIndex, error) {
	var idx columnIndex
	for i := range idx {
		idx[i] = -1
	}
	for pos, name := range header {
		slot := columnSlot(name)
		if slot < 0 {
			return idx, &ParseError{Line: 1, Column: pos + 1, Field: name, Err: ErrUnexpectedColumn}
		}
		if idx[slot] >= 0 {
			return idx, &ParseError{Line: 1, Column: pos + 1, Field: name, Err: ErrDuplicateColumn}
		}
		idx[slot] = pos
	}
	for slot, pos := range idx {
		if pos < 0 {
			return idx, &ParseError{Line: 1, Field: data.Columns[slot], Err: ErrMissingColumn}
		}
	}
	return idx, nil
}

func columnSlot(name string) int {
	for i, column := range data.Columns {
		if column == name {
			return i
		}
	}
	return -1
}

func (idx columnIndex) record(row []string) mod.BinRecord {
	return mod.BinRecord{
		Bin:         row[idx[0]],
		Brand:       row[idx[1]],
		CardType:    row[idx[2]],
		CountryName: row[idx[3]],
		IsoCode3:    row[idx[4]],
		IsoCode2:    row[idx[5]],
	}
}

func toParseError(err error) error {
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		return &ParseError{Line: csvErr.Line, Column: csvErr.Column, Err: csvErr.Err}
	}
	return errors.Wrap(err, "read bin dataset")
}

func invalidUTF8Offset(raw []byte) int {
	for i := 0; i < len(raw); {
		r, size := utf8.DecodeRune(raw[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}
