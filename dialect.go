package shl

import (
	"fmt"

	"github.com/gopatchy/shl/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// dialect holds the word classification tables for one shell grammar
// variant.
type dialect struct {
	keywords map[string]bool
	builtins map[string]bool
}

var bourneKeywords = wordSet(
	"case", "do", "done", "elif", "else", "esac", "fi", "for", "if", "in",
	"then", "until", "while",
)

var bourneBuiltins = wordSet(
	":", ".", "break", "cd", "continue", "echo", "eval", "exec", "exit",
	"export", "false", "getopts", "hash", "kill", "pwd", "read", "readonly",
	"return", "set", "shift", "test", "times", "trap", "true", "type",
	"ulimit", "umask", "unset", "wait",
)

var bashKeywords = merge(bourneKeywords, wordSet(
	"function", "select", "time", "[[", "]]",
))

var bashBuiltins = merge(bourneBuiltins, wordSet(
	"alias", "bg", "bind", "builtin", "caller", "command", "declare",
	"dirs", "disown", "enable", "fc", "fg", "help", "history", "jobs",
	"let", "local", "logout", "mapfile", "popd", "printf", "pushd",
	"shopt", "source", "suspend", "typeset", "unalias",
))

var dialectByName = map[string]dialect{
	"bourne": {
		keywords: bourneKeywords,
		builtins: bourneBuiltins,
	},
	"bash": {
		keywords: bashKeywords,
		builtins: bashBuiltins,
	},
	"ksh": {
		keywords: merge(bourneKeywords, wordSet("function", "select", "time")),
		builtins: merge(bourneBuiltins, wordSet(
			"alias", "bg", "fc", "fg", "jobs", "let", "print", "typeset",
			"unalias", "whence",
		)),
	},
	"zsh": {
		keywords: merge(bashKeywords, wordSet("foreach", "repeat", "always")),
		builtins: merge(bashBuiltins, wordSet(
			"autoload", "bindkey", "print", "setopt", "unsetopt", "whence",
			"zle", "zmodload",
		)),
	},
	"csh": {
		keywords: wordSet(
			"breaksw", "case", "default", "else", "end", "endif", "endsw",
			"foreach", "if", "repeat", "switch", "then", "while",
		),
		builtins: wordSet(
			"alias", "bg", "cd", "chdir", "dirs", "echo", "eval", "exec",
			"exit", "fg", "glob", "goto", "history", "jobs", "kill", "limit",
			"login", "logout", "nice", "nohup", "notify", "onintr", "popd",
			"pushd", "rehash", "set", "setenv", "shift", "source", "stop",
			"suspend", "time", "umask", "unalias", "unhash", "unset",
			"unsetenv", "wait",
		),
	},
}

func getDialect(name string) (*dialect, error) {
	d, found := dialectByName[name]
	if !found {
		return nil, fmt.Errorf("%s: %w", name, errors.ErrUnknownDialect)
	}

	return &d, nil
}

// Dialects returns the supported dialect names, sorted.
func Dialects() []string {
	names := maps.Keys(dialectByName)
	slices.Sort(names)
	return names
}

func wordSet(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}

	return m
}

func merge(sets ...map[string]bool) map[string]bool {
	m := map[string]bool{}
	for _, set := range sets {
		maps.Copy(m, set)
	}

	return m
}
