package main

import (
	"cmp"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ddirect/persistent/set"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type parseFunc[T any] func(string) (T, error)

func parseInt(s string) (int, error) {
	return strconv.Atoi(s)
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

func parseString(s string) (string, error) {
	return s, nil
}

// parseList splits a comma separated list. Blank elements are skipped.
func parseList[T any](list string, parse parseFunc[T]) ([]T, error) {
	var xs []T
	for i, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		x, err := parse(field)
		if err != nil {
			return nil, errors.Wrapf(err, "element %d of %q", i, list)
		}
		xs = append(xs, x)
	}
	return xs, nil
}

func execute[T cmp.Ordered](log *logrus.Entry, req request, parse parseFunc[T], out io.Writer) error {
	sets := make([]set.Set[T], len(req.lists))
	for i, list := range req.lists {
		xs, err := parseList(list, parse)
		if err != nil {
			return err
		}
		sets[i] = set.FromSlice(xs)
		log.WithFields(logrus.Fields{"arg": i, "elements": len(xs), "members": sets[i].Len()}).Debug("parsed set")
	}

	var results []any
	switch req.command {
	case "build":
		results = append(results, sets[0])
	case "member":
		v, err := parse(req.value)
		if err != nil {
			return errors.Wrapf(err, "value %q", req.value)
		}
		results = append(results, sets[0].Member(v))
	case "union":
		results = append(results, sets[0].Union(sets[1]))
	case "intersect":
		results = append(results, sets[0].Intersect(sets[1]))
	case "diff":
		results = append(results, sets[0].Diff(sets[1]))
	case "partition":
		pivot, err := parse(req.value)
		if err != nil {
			return errors.Wrapf(err, "pivot %q", req.value)
		}
		above, rest := sets[0].Partition(func(v T) bool { return v > pivot })
		results = append(results, above, rest)
	case "mod":
		ints, ok := any(sets[0]).(set.Set[int])
		if !ok {
			return errors.Errorf("mod needs int elements")
		}
		if req.modulus == 0 {
			return errors.Errorf("mod by zero")
		}
		results = append(results, set.Map(ints, func(v int) int { return v % req.modulus }))
	default:
		return errors.Errorf("unknown command %q", req.command)
	}

	for _, r := range results {
		if _, err := fmt.Fprintln(out, r); err != nil {
			return errors.Wrap(err, "write result")
		}
	}
	log.WithField("results", len(results)).Debug("done")
	return nil
}
