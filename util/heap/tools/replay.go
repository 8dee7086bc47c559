package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/navijation/njheap/util/heap"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
)

var errDuplicateKey = errors.New("key already queued")

// argument count of each replay operation
var wantArgs = map[string]int{
	"add": 2, "update": 2, "delete": 1, "get": 1,
	"peek": 0, "poll": 0, "drain": 0, "size": 0, "trim": 0,
}

type entry struct {
	key      string
	priority int64
}

func (me entry) String() string {
	return fmt.Sprintf("%s %d", me.key, me.priority)
}

func replayScript(_ context.Context, cmd *cli.Command) error {
	reader := io.Reader(os.Stdin)
	if path := cmd.String("file"); path != "" {
		file, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open %q: %w", path, err)
		}
		defer file.Close()
		reader = file
	}

	return replay(reader, os.Stdout)
}

// replay runs one queue operation per line of script and writes one line per
// result to out.
func replay(script io.Reader, out io.Writer) error {
	q := heap.NewKeyed(heap.Args[entry, string, int64]{
		Identity: func(e entry) string { return e.key },
		Priority: func(e entry) int64 { return e.priority },
	})

	scanner := bufio.NewScanner(script)
	for lineNumber := 1; scanner.Scan(); lineNumber++ {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		if err := replayLine(q, fields, out); err != nil {
			return errors.Wrapf(err, "line %d", lineNumber)
		}
	}
	return scanner.Err()
}

func replayLine(q *heap.Queue[entry, string, int64], fields []string, out io.Writer) error {
	op, args := fields[0], fields[1:]

	n, known := wantArgs[op]
	if !known {
		return errors.Errorf("unknown operation %q", op)
	}
	if len(args) != n {
		return errors.Errorf("%s takes %d argument(s), got %d", op, n, len(args))
	}

	var next entry
	if n == 2 {
		priority, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return errors.Wrapf(err, "invalid priority %q", args[1])
		}
		next = entry{key: args[0], priority: priority}
	}

	switch op {
	case "add":
		if q.Contains(next.key) {
			return errors.Wrapf(errDuplicateKey, "add %s", next.key)
		}
		q.Add(next)
		return printLine(out, "added", next)
	case "update":
		old, err := q.UpdateElement(next.key, next)
		if err != nil {
			return err
		}
		return printLine(out, "updated", old, "->", next.priority)
	case "delete":
		deleted, exists := q.DeleteElement(args[0])
		if !exists {
			return printLine(out, "absent", args[0])
		}
		return printLine(out, "deleted", deleted)
	case "get":
		priority, err := q.GetElement(args[0])
		if err != nil {
			return err
		}
		return printLine(out, args[0], priority)
	case "peek":
		return printOptional(out, q.Peek)
	case "poll":
		return printOptional(out, q.Poll)
	case "drain":
		for !q.IsEmpty() {
			if err := printOptional(out, q.Poll); err != nil {
				return err
			}
		}
		return nil
	case "size":
		return printLine(out, q.Size())
	default:
		q.Trim()
		return printLine(out, "trimmed", q.Size())
	}
}

func printOptional(out io.Writer, read func() (entry, bool)) error {
	e, exists := read()
	if !exists {
		return printLine(out, "empty")
	}
	return printLine(out, e)
}

func printLine(out io.Writer, values ...any) error {
	_, err := fmt.Fprintln(out, values...)
	return err
}
