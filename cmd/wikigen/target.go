package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"filmwiki/internal/domain"
)

// target is what generate works on: one work, or all published works of a kind.
type target struct {
	kind domain.Kind
	id   int64
	all  bool
	out  string // pages directory chosen at the prompt; empty keeps the flag/env value
}

func parseTarget(kind, id string) (target, error) {
	k, ok := domain.ParseKind(kind)
	if !ok {
		return target{}, fmt.Errorf("unknown kind %q (want movie or series)", kind)
	}
	id = strings.TrimSpace(id)
	if id == "*" {
		return target{kind: k, all: true}, nil
	}
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil || n <= 0 {
		return target{}, fmt.Errorf("invalid work id %q", id)
	}
	return target{kind: k, id: n}, nil
}

// promptTarget asks for kind, id and pages directory on in. Empty answers
// keep defKind and defOut.
func promptTarget(in io.Reader, out io.Writer, defKind, defOut string) (target, error) {
	sc := bufio.NewScanner(in)
	ask := func(q string) (string, error) {
		fmt.Fprint(out, q)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}
			return "", io.ErrUnexpectedEOF
		}
		return strings.TrimSpace(sc.Text()), nil
	}

	kind, err := ask(fmt.Sprintf("kind (movie/series) [%s]: ", defKind))
	if err != nil {
		return target{}, err
	}
	if kind == "" {
		kind = defKind
	}
	id, err := ask("work id, or * for all published: ")
	if err != nil {
		return target{}, err
	}
	t, err := parseTarget(kind, id)
	if err != nil {
		return target{}, err
	}
	dir, err := ask(fmt.Sprintf("pages directory [%s]: ", defOut))
	if err != nil {
		return target{}, err
	}
	if dir == "" {
		dir = defOut
	}
	t.out = dir
	return t, nil
}
