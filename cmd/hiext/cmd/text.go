package cmd

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	hixerror "github.com/msto63/hiext/core/error"
	hixlog "github.com/msto63/hiext/core/log"
	"github.com/msto63/hiext/pkg/markup"
	"github.com/msto63/hiext/utils/stringx"
)

func newTextCommand(a *app) *cobra.Command {
	textCmd := &cobra.Command{
		Use:   "text",
		Short: "Transform text",
		Long: `Text helpers. Every command reads its input from the first argument,
or from standard input when the argument is "-" or missing.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	textCmd.AddCommand(
		a.textFunc("camel <input>", "Convert snake_case to camelCase", stringx.UnderscoreToCamelCase),
		a.newUpperFirstCmd(),
		a.textFunc("trim <input>", "Remove leading and trailing spaces and tabs", stringx.Trim),
		a.newTruncateCmd(),
		a.textFunc("urlencode <input>", "Percent-encode for a URL query", stringx.URLEncode),
		a.newSplitCmd(),
		a.newEmailCmd(),
		a.textFunc("count <input>", "Count user-perceived characters", func(s string) string {
			return strconv.Itoa(stringx.Count(s))
		}),
		a.newDateCmd(),
		a.newStrongCmd(),
		a.newCharCmd(),
		a.newStripCmd(),
	)
	return textCmd
}

// textFunc builds a command printing fn applied to the input
func (a *app) textFunc(use, short string, fn func(string) string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := a.input(cmd, args)
			if err != nil {
				return err
			}
			a.println(cmd, fn(input))
			return nil
		},
	}
}

func (a *app) newUpperFirstCmd() *cobra.Command {
	var locale string
	cmd := &cobra.Command{
		Use:   "upper-first <input>",
		Short: "Capitalise the first character",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := a.input(cmd, args)
			if err != nil {
				return err
			}
			tag := a.settings.Locale
			if locale != "" {
				if tag, err = parseLocale(locale); err != nil {
					return err
				}
			}
			a.println(cmd, stringx.UppercaseFirstIn(input, tag))
			return nil
		},
	}
	cmd.Flags().StringVar(&locale, "locale", "", "BCP 47 language tag for casing rules (default: text.locale)")
	return cmd
}

func (a *app) newTruncateCmd() *cobra.Command {
	var length int
	var trailing string
	cmd := &cobra.Command{
		Use:   "truncate <input>",
		Short: "Shorten text to a number of characters",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := a.input(cmd, args)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("length") {
				length = a.settings.TruncateLength
			}
			if !cmd.Flags().Changed("trailing") {
				trailing = a.settings.Trailing
			}
			a.println(cmd, stringx.TruncateWith(input, length, trailing))
			return nil
		},
	}
	cmd.Flags().IntVarP(&length, "length", "n", 10, "maximum number of characters to keep (default: text.truncate_length)")
	cmd.Flags().StringVar(&trailing, "trailing", stringx.DefaultTrailing, "text appended when truncated (default: text.trailing)")
	return cmd
}

func (a *app) newSplitCmd() *cobra.Command {
	var delimiter string
	cmd := &cobra.Command{
		Use:   "split <input>",
		Short: "Split text on a delimiter, one part per line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := a.input(cmd, args)
			if err != nil {
				return err
			}
			for _, part := range stringx.Split(input, delimiter) {
				a.println(cmd, part)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&delimiter, "delimiter", "d", " ", "literal delimiter")
	return cmd
}

func (a *app) newEmailCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "email <input>",
		Short: "Check whether the input looks like an email address",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := a.input(cmd, args)
			if err != nil {
				return err
			}
			a.println(cmd, strconv.FormatBool(stringx.IsValidEmail(input)))
			return nil
		},
	}
}

func (a *app) newDateCmd() *cobra.Command {
	var format, zone string
	cmd := &cobra.Command{
		Use:   "date <input>",
		Short: "Parse a date and print it as RFC 3339",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := a.input(cmd, args)
			if err != nil {
				return err
			}
			if format == "" {
				format = a.settings.DateFormat
			}
			loc := a.settings.Location
			if zone != "" {
				if loc, err = time.LoadLocation(zone); err != nil {
					return hixerror.InputError("hiext.text.date", zone, "IANA time zone name")
				}
			}

			t, err := stringx.ParseDate(input, format, loc)
			if err != nil {
				a.log.DebugWithErr("date not parsed", err, hixlog.Field("pattern", format))
				return err
			}
			a.println(cmd, t.Format(time.RFC3339Nano))
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "Unicode date pattern (default: text.date_format)")
	cmd.Flags().StringVar(&zone, "zone", "", "time zone for values without offset (default: text.time_zone)")
	return cmd
}

func (a *app) newStrongCmd() *cobra.Command {
	var size float64
	var color string
	var spans bool
	cmd := &cobra.Command{
		Use:   "strong <input>",
		Short: "Style the contents of <strong> tags",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := a.input(cmd, args)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("size") {
				size = a.settings.StrongSize
			}
			c := a.settings.StrongColor
			if color != "" {
				if c, err = markup.ParseColor(color); err != nil {
					return err
				}
			}

			text, err := stringx.BoldStrongTags(a.renderer, input, size, c)
			if err != nil {
				return err
			}
			if !spans {
				a.println(cmd, text.Render())
				return nil
			}
			for _, s := range text.Spans {
				if s.Styled() {
					a.println(cmd, strconv.Quote(s.Text), s.Attributes.String())
				} else {
					a.println(cmd, strconv.Quote(s.Text))
				}
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&size, "size", 14, "font size in points (default: markup.strong_size)")
	cmd.Flags().StringVar(&color, "color", "", "colour as #RRGGBB (default: markup.strong_color)")
	cmd.Flags().BoolVar(&spans, "spans", false, "list the spans and their attributes instead of rendering")
	return cmd
}

func (a *app) newCharCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "char <input> <index>",
		Short: "Print the character at a position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := strconv.Atoi(args[1])
			if err != nil {
				return hixerror.InputError("hiext.text.char", args[1], "integer index")
			}
			c, err := stringx.CharAt(args[0], i)
			if err != nil {
				return err
			}
			a.println(cmd, c)
			return nil
		},
	}
}

func (a *app) newStripCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strip <input>",
		Short: "Render HTML and print its plain text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := a.input(cmd, args)
			if err != nil {
				return err
			}
			text, ok := stringx.StripHTML(a.renderer, input)
			if !ok {
				return hixerror.New("input cannot be rendered as HTML").
					WithCode(hixerror.CodeInvalidFormat).
					WithOperation("hiext.text.strip")
			}
			a.println(cmd, text)
			return nil
		},
	}
}

// input returns the first argument, or standard input without its final
// line break when the argument is "-" or missing.
func (a *app) input(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		return args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", hixerror.Wrap(err, "failed to read standard input").
			WithCode(hixerror.CodeOperationFailed).
			WithOperation("hiext.input")
	}
	s := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(s, "\r"), nil
}

func parseLocale(s string) (language.Tag, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, hixerror.InputError("hiext.text.upper-first", s, "BCP 47 language tag")
	}
	return tag, nil
}
