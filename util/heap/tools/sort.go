package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/navijation/njheap/util"
	"github.com/navijation/njheap/util/heap"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
)

func sortNumbers(_ context.Context, cmd *cli.Command) error {
	var fields []string
	if cmd.Args().Len() > 0 {
		fields = cmd.Args().Slice()
	} else {
		var err error
		if fields, err = readFields(os.Stdin); err != nil {
			return err
		}
	}

	return sortFields(os.Stdout, fields, cmd.Bool("descending"))
}

func readFields(reader io.Reader) (out []string, _ error) {
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		out = append(out, strings.Fields(scanner.Text())...)
	}
	return out, scanner.Err()
}

func sortFields(writer io.Writer, fields []string, descending bool) error {
	args := heap.Args[float64, uint64, float64]{
		Identity: math.Float64bits,
		Priority: func(v float64) float64 { return v },
		Capacity: util.Some(len(fields)),
	}
	if descending {
		args.Less = util.Some(func(a, b float64) bool { return a > b })
	}

	// numbers may repeat, so each one is queued once with a count; keys are the
	// bit patterns so that -0 and 0 stay distinct
	counts := make(map[uint64]int, len(fields))
	values := make([]float64, 0, len(fields))
	for _, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return errors.Wrapf(err, "invalid number %q", field)
		}
		if math.IsNaN(v) {
			return errors.Errorf("invalid number %q", field)
		}
		if counts[math.Float64bits(v)] == 0 {
			values = append(values, v)
		}
		counts[math.Float64bits(v)]++
	}

	q := heap.NewKeyed(args)
	q.Heapify(values)

	for {
		v, exists := q.Poll()
		if !exists {
			return nil
		}
		for range counts[math.Float64bits(v)] {
			if _, err := fmt.Fprintln(writer, strconv.FormatFloat(v, 'g', -1, 64)); err != nil {
				return err
			}
		}
	}
}
