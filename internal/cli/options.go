/*
PURPOSE:
  Turns the raw process arguments into Options.
  Recognizes --verbose/-v, --input/-i and --output/-o; keeps everything else.

REQUIREMENTS:
  User-specified:
  - Long and short forms are equivalent and may appear in any order.
  - Unrecognized flags are kept, not rejected.
  - Malformed input (e.g. --input with no value) is not an error.

  Implementation-discovered:
  - pflag rejects missing values and unknown shorthands, so arguments are
    normalized into long "--name=value" form before pflag sees them.
  - Boolean flags: --verbose=x is true unless x is "false", a bare
    "true"/"false" after a boolean flag is consumed, --no-verbose clears it.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli/root.go
  - Produces: forge.Config via Options.Config()

ERROR HANDLING:
  - ParseOptions only fails if pflag rejects a normalized argument.

IMPLEMENTATION RULES:
  - Pure: no I/O, no globals.

USAGE:
  opts, err := cli.ParseOptions(os.Args[1:])

RELATED FILES:
  - internal/forge/forge.go
*/

package cli

import (
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/spf13/pflag"

	"github.com/daryltucker/neuralforge/internal/forge"
)

const (
	flagVerbose = "verbose"
	flagInput   = "input"
	flagOutput  = "output"
)

// Options is the result of parsing the command line.
type Options struct {
	Verbose bool
	// Input and Output are nil when the flag was not given.
	Input  *string
	Output *string
	// Extra holds unrecognized flags by name, without dashes. Bare flags map to "true".
	Extra map[string]string
	// Args are the positional arguments, including everything after "--".
	Args []string
}

// Config is the subset of Options handed to the application.
// Input and Output are not part of it.
func (o Options) Config() forge.Config {
	return forge.Config{Verbose: o.Verbose}
}

// newFlagSet declares the recognized flags, bound to opts and the two string targets.
func newFlagSet(opts *Options, input, output *string) *pflag.FlagSet {
	fs := pflag.NewFlagSet("neuralforge", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	fs.BoolVarP(&opts.Verbose, flagVerbose, "v", false, "Enable verbose output")
	fs.StringVarP(input, flagInput, "i", "", "Input path")
	fs.StringVarP(output, flagOutput, "o", "", "Output path")
	return fs
}

// ParseOptions parses args permissively.
func ParseOptions(args []string) (Options, error) {
	var (
		opts          Options
		input, output string
	)
	fs := newFlagSet(&opts, &input, &output)

	flagArgs, extra, positional := normalize(fs, args)
	if err := fs.Parse(flagArgs); err != nil {
		return Options{}, err
	}

	if fs.Changed(flagInput) {
		opts.Input = &input
	}
	if fs.Changed(flagOutput) {
		opts.Output = &output
	}
	opts.Extra = extra
	opts.Args = positional
	return opts, nil
}

func isFlag(arg string) bool {
	return len(arg) > 1 && arg[0] == '-'
}

func isBool(f *pflag.Flag) bool {
	return f.Value.Type() == "bool"
}

// normalize splits args into long-form arguments for the known flags,
// unrecognized flags and positional arguments.
func normalize(fs *pflag.FlagSet, args []string) (flagArgs []string, extra map[string]string, positional []string) {
	extra = map[string]string{}
	positional = []string{}

	// next consumes args[i+1] when it is a value rather than another flag.
	next := func(i *int, accept func(string) bool) (string, bool) {
		if *i+1 >= len(args) || !accept(args[*i+1]) {
			return "", false
		}
		*i++
		return args[*i], true
	}
	notFlag := func(s string) bool { return !isFlag(s) }
	boolWord := func(s string) bool { return s == "true" || s == "false" }

	setBool := func(f *pflag.Flag, value string) {
		flagArgs = append(flagArgs, "--"+f.Name+"="+strconv.FormatBool(value != "false"))
	}
	setValue := func(f *pflag.Flag, value string) {
		flagArgs = append(flagArgs, "--"+f.Name+"="+value)
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch {
		case arg == "--":
			positional = append(positional, args[i+1:]...)
			return flagArgs, extra, positional

		case !isFlag(arg):
			positional = append(positional, arg)

		case strings.HasPrefix(arg, "--"):
			name, value, hasValue := strings.Cut(arg[2:], "=")
			if name == "" {
				positional = append(positional, arg)
				continue
			}

			f := fs.Lookup(name)
			if f == nil && !hasValue && strings.HasPrefix(name, "no-") {
				if nf := fs.Lookup(strings.TrimPrefix(name, "no-")); nf != nil && isBool(nf) {
					setBool(nf, "false")
					continue
				}
			}

			switch {
			case f == nil:
				if !hasValue {
					var ok bool
					if value, ok = next(&i, notFlag); !ok {
						value = "true"
					}
				}
				extra[name] = value
			case isBool(f):
				if !hasValue {
					var ok bool
					if value, ok = next(&i, boolWord); !ok {
						value = "true"
					}
				}
				setBool(f, value)
			default:
				if !hasValue {
					value, _ = next(&i, notFlag)
				}
				setValue(f, value)
			}

		default:
			// Short cluster such as -v, -vi a.txt, -ia.txt or -o=b.txt.
			runes := []rune(arg[1:])
			for j := 0; j < len(runes); j++ {
				name := string(runes[j])
				rest := string(runes[j+1:])
				last := j == len(runes)-1

				var f *pflag.Flag
				if utf8.RuneLen(runes[j]) == 1 {
					f = fs.ShorthandLookup(name)
				}

				switch {
				case f == nil:
					value := "true"
					if strings.HasPrefix(rest, "=") {
						value = rest[1:]
						j = len(runes)
					} else if last {
						if v, ok := next(&i, notFlag); ok {
							value = v
						}
					}
					extra[name] = value
				case isBool(f):
					value := "true"
					if strings.HasPrefix(rest, "=") {
						value = rest[1:]
						j = len(runes)
					} else if last {
						if v, ok := next(&i, boolWord); ok {
							value = v
						}
					}
					setBool(f, value)
				default:
					var value string
					if rest != "" {
						value = strings.TrimPrefix(rest, "=")
						j = len(runes)
					} else {
						value, _ = next(&i, notFlag)
					}
					setValue(f, value)
				}
			}
		}
	}

	return flagArgs, extra, positional
}
