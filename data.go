package quickplot

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"reflect"
	"strconv"
	"strings"

	ggtable "github.com/aclements/go-gg/table"
	"github.com/jedib0t/go-pretty/v6/table"
)

// DataFrame is a table of named columns of equal length.
//
// All values are stored as float64: Float columns hold the value
// itself, String columns hold the index of the value in Pool. NaN
// marks a missing value in both kinds of columns.
type DataFrame struct {
	Name    string
	N       int
	Columns map[string]Field
	Pool    *StringPool

	order []string
}

// Field is one column of a data frame.
type Field struct {
	Type FieldType
	Data []float64
	Pool *StringPool
}

// FieldType represents the basic type of a field.
type FieldType uint

const (
	Float FieldType = iota
	String
)

func (t FieldType) String() string {
	switch t {
	case Float:
		return "float"
	case String:
		return "string"
	}
	return fmt.Sprintf("FieldType(%d)", uint(t))
}

// NewDataFrame returns an empty data frame. A nil pool gets a fresh one.
func NewDataFrame(name string, pool *StringPool) *DataFrame {
	if pool == nil {
		pool = NewStringPool()
	}
	return &DataFrame{
		Name:    name,
		Columns: make(map[string]Field),
		Pool:    pool,
	}
}

// NewField makes a field of type t with n (zero) values.
func NewField(n int, t FieldType, pool *StringPool) Field {
	return Field{
		Type: t,
		Data: make([]float64, n),
		Pool: pool,
	}
}

// Discrete reports whether f holds categorical data.
func (f Field) Discrete() bool { return f.Type == String }

// IsNA reports whether the i'th value is missing.
func (f Field) IsNA(i int) bool { return math.IsNaN(f.Data[i]) }

// Text returns the i'th value formatted as text.
func (f Field) Text(i int) string {
	x := f.Data[i]
	if f.Discrete() {
		if math.IsNaN(x) {
			return NA
		}
		return f.Pool.Get(int(x))
	}
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// Strings returns all values of f as text, leaving out missing ones.
func (f Field) Strings() []string {
	s := make([]string, 0, len(f.Data))
	for i := range f.Data {
		if f.IsNA(i) {
			continue
		}
		s = append(s, f.Text(i))
	}
	return s
}

// Less orders two values of f: numerically for Float fields and
// lexically by the pooled text for String fields.
func (f Field) Less(a, b float64) bool {
	if f.Discrete() {
		return f.Pool.Get(int(a)) < f.Pool.Get(int(b))
	}
	return a < b
}

// Copy returns a deep copy of f sharing the pool.
func (f Field) Copy() Field {
	c := NewField(len(f.Data), f.Type, f.Pool)
	copy(c.Data, f.Data)
	return c
}

// Has reports whether df contains a column name.
func (df *DataFrame) Has(name string) bool {
	_, ok := df.Columns[name]
	return ok
}

// FieldNames returns the column names in insertion order.
func (df *DataFrame) FieldNames() []string {
	names := make([]string, len(df.order))
	copy(names, df.order)
	return names
}

// Column returns the named column.
func (df *DataFrame) Column(name string) (Field, error) {
	f, ok := df.Columns[name]
	if !ok {
		return Field{}, fmt.Errorf("%w: %q in %s (have %s)",
			ErrNoColumn, name, df.Name, strings.Join(df.order, ", "))
	}
	return f, nil
}

// Add adds (or replaces) column name. All columns must have the same
// length.
func (df *DataFrame) Add(name string, f Field) error {
	others := len(df.order)
	if df.Has(name) {
		others--
	}
	if others > 0 && len(f.Data) != df.N {
		return fmt.Errorf("%w: column %q has %d values, data frame %d",
			ErrLengthMismatch, name, len(f.Data), df.N)
	}
	if !df.Has(name) {
		df.order = append(df.order, name)
	}
	if f.Pool == nil {
		f.Pool = df.Pool
	}
	df.Columns[name] = f
	df.N = len(f.Data)
	return nil
}

// AddFloat adds a numeric column.
func (df *DataFrame) AddFloat(name string, data []float64) error {
	f := NewField(len(data), Float, df.Pool)
	copy(f.Data, data)
	return df.Add(name, f)
}

// AddString adds a categorical column.
func (df *DataFrame) AddString(name string, data []string) error {
	f := NewField(len(data), String, df.Pool)
	for i, s := range data {
		f.Data[i] = float64(df.Pool.Add(s))
	}
	return df.Add(name, f)
}

// Copy returns a deep copy of df sharing the string pool.
func (df *DataFrame) Copy() *DataFrame {
	c := NewDataFrame(df.Name, df.Pool)
	for _, name := range df.order {
		c.Columns[name] = df.Columns[name].Copy()
	}
	c.order = df.FieldNames()
	c.N = df.N
	return c
}

// Rename changes the name of column from to to.
func (df *DataFrame) Rename(from, to string) {
	if from == to {
		return
	}
	f, ok := df.Columns[from]
	if !ok {
		return
	}
	delete(df.Columns, from)
	df.Columns[to] = f
	for i, n := range df.order {
		if n == from {
			df.order[i] = to
		}
	}
}

// Print writes df as a table to w.
func (df *DataFrame) Print(w io.Writer) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)

	header := make(table.Row, len(df.order))
	for i, name := range df.order {
		header[i] = name
	}
	tw.AppendHeader(header)

	for r := 0; r < df.N; r++ {
		row := make(table.Row, len(df.order))
		for i, name := range df.order {
			row[i] = df.Columns[name].Text(r)
		}
		tw.AppendRow(row)
	}
	tw.Render()
}

// -------------------------------------------------------------------------
// Construction from Go values

// NewDataFrameFrom constructs a data frame from a slice of structs
// (a "slice of measurements"). Exported fields of integer, float or
// string type become columns, as do methods without arguments returning
// one of these types. Column order follows the struct definition,
// methods come last.
func NewDataFrameFrom(data interface{}) (*DataFrame, error) {
	v := reflect.ValueOf(data)
	if v.Kind() != reflect.Slice {
		return nil, fmt.Errorf("cannot convert %T to data frame", data)
	}
	t := v.Type().Elem()
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("cannot convert %T to data frame: elements are no structs", data)
	}

	df := NewDataFrame(t.Name(), nil)
	n := v.Len()

	add := func(name string, kind reflect.Kind, value func(i int) reflect.Value) error {
		switch kind {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			f := NewField(n, Float, df.Pool)
			for i := 0; i < n; i++ {
				f.Data[i] = float64(value(i).Int())
			}
			return df.Add(name, f)
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			f := NewField(n, Float, df.Pool)
			for i := 0; i < n; i++ {
				f.Data[i] = float64(value(i).Uint())
			}
			return df.Add(name, f)
		case reflect.Float32, reflect.Float64:
			f := NewField(n, Float, df.Pool)
			for i := 0; i < n; i++ {
				f.Data[i] = value(i).Float()
			}
			return df.Add(name, f)
		case reflect.String:
			f := NewField(n, String, df.Pool)
			for i := 0; i < n; i++ {
				f.Data[i] = float64(df.Pool.Add(value(i).String()))
			}
			return df.Add(name, f)
		}
		return nil
	}

	// Fields first.
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.PkgPath != "" {
			continue // unexported
		}
		idx := i
		err := add(sf.Name, sf.Type.Kind(), func(r int) reflect.Value {
			return v.Index(r).Field(idx)
		})
		if err != nil {
			return nil, err
		}
	}

	// The same for methods like "func(elemtype) [int,string,float]".
	for i := 0; i < t.NumMethod(); i++ {
		m := t.Method(i)
		mt := m.Type
		if mt.NumIn() != 1 || mt.NumOut() != 1 {
			continue
		}
		err := add(m.Name, mt.Out(0).Kind(), func(r int) reflect.Value {
			return m.Func.Call([]reflect.Value{v.Index(r)})[0]
		})
		if err != nil {
			return nil, err
		}
	}

	df.N = n
	return df, nil
}

// NewDataFrameFromTable converts a go-gg table. Columns of numeric
// type become Float columns, string columns become String columns,
// other columns are skipped.
func NewDataFrameFromTable(t *ggtable.Table) (*DataFrame, error) {
	if t == nil {
		return nil, ErrNoFrame
	}
	df := NewDataFrame("table", nil)
	n := t.Len()
	for _, name := range t.Columns() {
		rv := reflect.ValueOf(t.Column(name))
		if rv.Kind() != reflect.Slice {
			continue
		}
		var f Field
		switch rv.Type().Elem().Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			f = NewField(n, Float, df.Pool)
			for i := 0; i < n; i++ {
				f.Data[i] = float64(rv.Index(i).Int())
			}
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			f = NewField(n, Float, df.Pool)
			for i := 0; i < n; i++ {
				f.Data[i] = float64(rv.Index(i).Uint())
			}
		case reflect.Float32, reflect.Float64:
			f = NewField(n, Float, df.Pool)
			for i := 0; i < n; i++ {
				f.Data[i] = rv.Index(i).Float()
			}
		case reflect.String:
			f = NewField(n, String, df.Pool)
			for i := 0; i < n; i++ {
				f.Data[i] = float64(df.Pool.Add(rv.Index(i).String()))
			}
		default:
			continue
		}
		if err := df.Add(name, f); err != nil {
			return nil, err
		}
	}
	df.N = n
	return df, nil
}

// -------------------------------------------------------------------------
// CSV

// ReadCSV reads a data frame from CSV data with a header line. A column
// is numeric if every non-empty cell parses as a float; otherwise it is
// a string column. Empty cells (and "NA", "NaN") are missing values.
func ReadCSV(r io.Reader) (*DataFrame, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("read csv: %w", ErrEmptyData)
	}

	header := records[0]
	rows := records[1:]
	seen := NewStringSet()
	for _, h := range header {
		if seen.Contains(h) {
			return nil, fmt.Errorf("read csv: duplicate column %q", h)
		}
		seen.Add(h)
	}

	df := NewDataFrame("csv", nil)
	for c, name := range header {
		cells := make([]string, len(rows))
		for i, row := range rows {
			cells[i] = strings.TrimSpace(row[c])
		}
		if err := df.Add(name, parseColumn(cells, df.Pool)); err != nil {
			return nil, err
		}
	}
	df.N = len(rows)
	return df, nil
}

func isMissing(s string) bool {
	return s == "" || s == "NA" || s == "NaN" || s == "nan"
}

func parseColumn(cells []string, pool *StringPool) Field {
	f := NewField(len(cells), Float, pool)
	numeric := true
	for i, s := range cells {
		if isMissing(s) {
			f.Data[i] = math.NaN()
			continue
		}
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			numeric = false
			break
		}
		f.Data[i] = x
	}
	if numeric {
		return f
	}

	f.Type = String
	for i, s := range cells {
		if isMissing(s) {
			f.Data[i] = math.NaN()
			continue
		}
		f.Data[i] = float64(pool.Add(s))
	}
	return f
}
