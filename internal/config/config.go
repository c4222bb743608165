package config

import "fmt"

type JSXOptions struct {
	Parse bool
}

type TSOptions struct {
	Parse bool
}

type Loader int

const (
	LoaderNone Loader = iota
	LoaderJS
	LoaderJSX
	LoaderTS
	LoaderTSX
)

var loaderNames = map[string]Loader{
	"js":  LoaderJS,
	"jsx": LoaderJSX,
	"ts":  LoaderTS,
	"tsx": LoaderTSX,
}

func ParseLoader(text string) (Loader, error) {
	if loader, ok := loaderNames[text]; ok {
		return loader, nil
	}
	return LoaderNone, fmt.Errorf("Invalid loader: %q (valid: js, jsx, ts, tsx)", text)
}

func (loader Loader) String() string {
	for name, value := range loaderNames {
		if value == loader {
			return name
		}
	}
	return "none"
}

func (loader Loader) IsTypeScript() bool {
	return loader == LoaderTS || loader == LoaderTSX
}

func (loader Loader) IsJSX() bool {
	return loader == LoaderJSX || loader == LoaderTSX
}

type Options struct {
	TS  TSOptions
	JSX JSXOptions

	// If true, parenthesized expressions are kept in the tree as EParen nodes
	// instead of being dropped. Spans are the same either way.
	PreserveParens bool

	// The context the parse starts in. Setting these is equivalent to parsing
	// the code as the body of an async function or a generator function.
	AllowAwait bool
	AllowYield bool
}

func OptionsForLoader(loader Loader) Options {
	return Options{
		TS:  TSOptions{Parse: loader.IsTypeScript()},
		JSX: JSXOptions{Parse: loader.IsJSX()},
	}
}
