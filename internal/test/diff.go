package test

import (
	"strings"

	"github.com/fatih/color"
)

var (
	removedLine   = color.New(color.FgRed).SprintFunc()
	addedLine     = color.New(color.FgGreen).SprintFunc()
	unchangedLine = color.New(color.Faint).SprintFunc()
)

// Diff returns a line-by-line diff from "old" to "new". Lines are prefixed
// with "-", "+" or " ".
func Diff(old string, new string, useColor bool) string {
	return strings.Join(diffRec(nil, strings.Split(old, "\n"), strings.Split(new, "\n"), useColor), "\n")
}

func diffRec(result []string, old []string, new []string, useColor bool) []string {
	o, n, common := lcSubstr(old, new)

	if common == 0 {
		for _, line := range old {
			result = append(result, decorate("-", line, removedLine, useColor))
		}
		for _, line := range new {
			result = append(result, decorate("+", line, addedLine, useColor))
		}
		return result
	}

	result = diffRec(result, old[:o], new[:n], useColor)
	for _, line := range old[o : o+common] {
		result = append(result, decorate(" ", line, unchangedLine, useColor))
	}
	return diffRec(result, old[o+common:], new[n+common:], useColor)
}

func decorate(prefix string, line string, paint func(...interface{}) string, useColor bool) string {
	if useColor {
		return paint(prefix + line)
	}
	return prefix + line
}

// Longest common run of lines, see the longest common substring problem
func lcSubstr(S []string, T []string) (int, int, int) {
	r := len(S)
	n := len(T)
	Lprev := make([]int, n)
	Lnext := make([]int, n)
	z := 0
	retI := 0
	retJ := 0

	for i := 0; i < r; i++ {
		for j := 0; j < n; j++ {
			if S[i] == T[j] {
				if j == 0 {
					Lnext[j] = 1
				} else {
					Lnext[j] = Lprev[j-1] + 1
				}
				if Lnext[j] > z {
					z = Lnext[j]
					retI = i + 1
					retJ = j + 1
				}
			} else {
				Lnext[j] = 0
			}
		}
		Lprev, Lnext = Lnext, Lprev
	}

	return retI - z, retJ - z, z
}
