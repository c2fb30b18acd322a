package parse

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pagemark/pagemark/errortypes"
)

// Check validates marker well-formedness in a template: every loop start has
// a matching end and regions do not interleave, sections and blocks are
// terminated, block ids are unique, and a reorder container is closed. The
// problem at the earliest offset is returned as an errortypes.ErrFilePos
// naming the file; nil means clean.
//
// Processing never requires a clean template; unmatched markers degrade to
// literal text. Check exists so bundle compilation can point at mistakes
// while templates are being written.
func Check(file, text string) error {
	var problems []problem
	problems = append(problems, loopProblems(text)...)
	problems = append(problems, sectionProblems(text)...)
	problems = append(problems, blockProblems(text)...)
	problems = append(problems, reorderProblems(text)...)
	if len(problems) == 0 {
		return nil
	}
	sort.Slice(problems, func(i, j int) bool { return problems[i].off < problems[j].off })
	var first = problems[0]
	var line, col = Position(text, first.off)
	return errortypes.NewErrFilePosf(file, line, col, "%s", first.msg)
}

type problem struct {
	off int
	msg string
}

func loopProblems(text string) []problem {
	type marker struct {
		Span
		name  string
		start bool
	}
	var markers []marker
	var pos int
	for {
		var s, sname, sok = scanLoopMarker(text, pos, loopStartPrefix)
		var e, ename, eok = scanLoopMarker(text, pos, loopEndPrefix)
		switch {
		case !sok && !eok:
			pos = -1
		case sok && (!eok || s.Start < e.Start):
			markers = append(markers, marker{s, sname, true})
			pos = s.End
		default:
			markers = append(markers, marker{e, ename, false})
			pos = e.End
		}
		if pos < 0 {
			break
		}
	}

	// Ends bind to the most recent unmatched same-name start.
	var problems []problem
	var stacks = make(map[string][]int)
	type pair struct{ si, ei int }
	var pairs []pair
	for i, m := range markers {
		if m.start {
			stacks[m.name] = append(stacks[m.name], i)
			continue
		}
		var stack = stacks[m.name]
		if len(stack) == 0 {
			problems = append(problems, problem{m.Start, fmt.Sprintf("loop end %q has no start marker", m.name)})
			continue
		}
		pairs = append(pairs, pair{stack[len(stack)-1], i})
		stacks[m.name] = stack[:len(stack)-1]
	}
	for _, stack := range stacks {
		for _, i := range stack {
			problems = append(problems, problem{markers[i].Start, fmt.Sprintf("loop %q is never closed", markers[i].name)})
		}
	}
	for _, a := range pairs {
		for _, b := range pairs {
			if a.si < b.si && b.si < a.ei && a.ei < b.ei {
				problems = append(problems, problem{markers[b.si].Start,
					fmt.Sprintf("loop %q interleaves with loop %q", markers[b.si].name, markers[a.si].name)})
			}
		}
	}
	return problems
}

func sectionProblems(text string) []problem {
	type open struct {
		name string
		off  int
	}
	var pending []open
	var pos int
	for {
		var c, ok = nextComment(text, pos)
		if !ok {
			break
		}
		pos = c.End
		var name, isSection = sectionName(c.inner)
		if !isSection {
			continue
		}
		if strings.HasPrefix(name, "End") {
			var base = strings.TrimPrefix(name, "End")
			var found = -1
			for i := len(pending) - 1; i >= 0; i-- {
				if pending[i].name == base {
					found = i
					break
				}
			}
			if found >= 0 {
				pending = append(pending[:found], pending[found+1:]...)
				continue
			}
		}
		pending = append(pending, open{name, c.Start})
	}
	var problems []problem
	for _, p := range pending {
		problems = append(problems, problem{p.off, fmt.Sprintf("unmatched section marker %q", p.name)})
	}
	return problems
}

func blockProblems(text string) []problem {
	var problems []problem
	var pendingOff = make(map[string]int)
	var seen = make(map[string]bool)
	var pos int
	for {
		var c, ok = nextComment(text, pos)
		if !ok {
			break
		}
		pos = c.End
		if id, isOpen := blockID(c.inner, blockPrefix); isOpen {
			if seen[id] {
				problems = append(problems, problem{c.Start, fmt.Sprintf("duplicate block id %q", id)})
				continue
			}
			seen[id] = true
			pendingOff[id] = c.Start
			continue
		}
		if id, isEnd := blockID(c.inner, endBlockPrefix); isEnd {
			if _, open := pendingOff[id]; open {
				delete(pendingOff, id)
			} else {
				problems = append(problems, problem{c.Start, fmt.Sprintf("block end %q has no open marker", id)})
			}
		}
	}
	for id, off := range pendingOff {
		problems = append(problems, problem{off, fmt.Sprintf("block %q is never closed", id)})
	}
	return problems
}

func reorderProblems(text string) []problem {
	var problems []problem
	var openOff = -1
	var completed int
	var pos int
	for {
		var c, ok = nextComment(text, pos)
		if !ok {
			break
		}
		pos = c.End
		switch strings.TrimSpace(c.inner) {
		case reorderWord:
			if openOff >= 0 {
				problems = append(problems, problem{c.Start, "nested REORDER container"})
				continue
			}
			if completed > 0 {
				problems = append(problems, problem{c.Start, "multiple REORDER containers"})
			}
			openOff = c.Start
		case endReorderWord:
			if openOff < 0 {
				problems = append(problems, problem{c.Start, "ENDREORDER without REORDER"})
				continue
			}
			openOff = -1
			completed++
		}
	}
	if openOff >= 0 {
		problems = append(problems, problem{openOff, "REORDER container is never closed"})
	}
	return problems
}
