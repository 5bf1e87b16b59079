package report

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"

	"multiorder/container"
	"multiorder/internal/config"
	"multiorder/seqs"
)

// Row is one traversal order rendered as strings.
type Row struct {
	Order  container.Order
	Values []string
}

// Report is the outcome of loading, pruning and traversing a container.
type Report struct {
	// Contents is the container rendering after removals, e.g. "[ 1 2 ]".
	Contents string
	Size     int
	Rows     []Row
}

// Build loads cfg.Elements into a container of cfg.Kind, removes cfg.Remove and walks each order.
func Build(cfg *config.Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Kind {
	case config.KindFloat:
		return build(cfg, cast.ToFloat64E)
	case config.KindString:
		return build(cfg, cast.ToStringE)
	default:
		return build(cfg, toDecimalIntE)
	}
}

func build[T cmp.Ordered](cfg *config.Config, coerce func(any) (T, error)) (*Report, error) {
	orders, err := cfg.ParsedOrders()
	if err != nil {
		return nil, err
	}

	c := container.New[T]()
	for _, raw := range cfg.Elements {
		v, err := coerce(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "element %v is not a valid %s", raw, cfg.Kind)
		}
		c.Add(v)
	}
	logrus.Debugf("loaded %d %s elements: %s", c.Size(), cfg.Kind, c)

	for _, raw := range cfg.Remove {
		v, err := coerce(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "remove target %v is not a valid %s", raw, cfg.Kind)
		}
		before := c.Size()
		if err := c.Remove(v); err != nil {
			return nil, err
		}
		logrus.Debugf("removed %d occurrence(s) of %v", before-c.Size(), v)
	}

	r := &Report{Contents: c.String(), Size: c.Size()}
	for _, order := range orders {
		values := c.Seq(order)
		if cfg.Limit > 0 {
			values = seqs.Take(values, cfg.Limit)
		}
		r.Rows = append(r.Rows, Row{
			Order:  order,
			Values: slices.Collect(seqs.Map(values, func(v T) string { return fmt.Sprint(v) })),
		})
	}
	return r, nil
}

// toDecimalIntE reads strings as base 10 so that "010" stays 10; cast.ToIntE
// would treat the leading zero as an octal prefix. Values typed by YAML go through cast.
func toDecimalIntE(raw any) (int, error) {
	s, ok := raw.(string)
	if !ok {
		return cast.ToIntE(raw)
	}
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 0)
	if err != nil {
		return 0, errors.Wrapf(err, "unable to cast %q to int", s)
	}
	return int(v), nil
}

// WritePlain writes one "order: v1 v2 ..." line per row.
func (r *Report) WritePlain(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "contents: %s\n", r.Contents); err != nil {
		return err
	}
	for _, row := range r.Rows {
		if _, err := fmt.Fprintf(w, "%s: %s\n", row.Order, strings.Join(row.Values, " ")); err != nil {
			return err
		}
	}
	return nil
}

// WriteTable writes the rows as a table, one column per visited position.
func (r *Report) WriteTable(w io.Writer) {
	header := []string{"ORDER"}
	for i := range r.width() {
		header = append(header, fmt.Sprintf("#%d", i))
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetCaption(true, "contents: "+r.Contents)
	for _, row := range r.Rows {
		line := append([]string{row.Order.String()}, row.Values...)
		for len(line) < len(header) {
			line = append(line, "")
		}
		table.Append(line)
	}
	table.Render()
}

func (r *Report) width() int {
	width := 0
	for _, row := range r.Rows {
		width = max(width, len(row.Values))
	}
	return width
}
