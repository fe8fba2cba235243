package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/calebcase/numring/decimal"
	"github.com/calebcase/numring/ring"
	"github.com/calebcase/numring/store"
)

// NewApp returns the command line application. Results are written to out
// and diagnostics to log.
func NewApp(config *Config, log *logrus.Logger, out io.Writer) *cli.App {
	baseFlag := cli.IntFlag{
		Name:    "base",
		Aliases: []string{"b"},
		Usage:   "the base digits are stored in",
		Value:   config.Base,
	}

	fileFlag := cli.StringFlag{
		Name:    "file",
		Aliases: []string{"f"},
		Usage:   "the file used by load and save",
		Value:   config.File,
	}

	logLevelFlag := cli.StringFlag{
		Name:  "log-level",
		Usage: "the logrus level",
		Value: config.LogLevel,
	}

	a := &app{
		config: config,
		log:    log,
		out:    out,
	}

	return &cli.App{
		Name:      appName,
		Usage:     "arbitrary precision numbers as rings of digits",
		Writer:    out,
		ErrWriter: log.Out,
		Flags:     []cli.Flag{&baseFlag, &fileFlag, &logLevelFlag},
		Before: func(c *cli.Context) error {
			config.Base = c.Int(baseFlag.Name)
			config.File = c.String(fileFlag.Name)
			config.LogLevel = c.String(logLevelFlag.Name)

			if err := config.Validate(); err != nil {
				return err
			}

			level, err := logrus.ParseLevel(config.LogLevel)
			if err != nil {
				return err
			}
			log.SetLevel(level)

			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "digits",
				Usage:     "print the digits of a decimal number",
				ArgsUsage: "DECIMAL",
				Action:    a.digits,
			},
			{
				Name:      "decimal",
				Usage:     "print the decimal value of digits",
				ArgsUsage: "DIGIT...",
				Action:    a.decimal,
			},
			{
				Name:      "rebase",
				Usage:     "print the digits of a decimal number in another base",
				ArgsUsage: "DECIMAL",
				Flags: []cli.Flag{&cli.IntFlag{
					Name:     "to",
					Usage:    "the target base",
					Required: true,
				}},
				Action: a.rebase,
			},
			{
				Name:      "sub",
				Usage:     "subtract two decimal numbers",
				ArgsUsage: "DECIMAL DECIMAL",
				Action:    a.arithmetic(decimal.Subtract),
			},
			{
				Name:      "div",
				Usage:     "divide two decimal numbers",
				ArgsUsage: "DECIMAL DECIMAL",
				Action:    a.arithmetic(decimal.Divide),
			},
			{
				Name:      "sort",
				Usage:     "sort the digits of a decimal number",
				ArgsUsage: "DECIMAL",
				Flags: []cli.Flag{&cli.BoolFlag{
					Name:  "desc",
					Usage: "sort largest first",
				}},
				Action: a.sort,
			},
			{
				Name:      "shift",
				Usage:     "rotate the digits of a decimal number",
				ArgsUsage: "DECIMAL",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "right",
						Usage: "rotate towards the least significant digit",
					},
					&cli.IntFlag{
						Name:  "count",
						Usage: "the number of positions",
						Value: 1,
					},
				},
				Action: a.shift,
			},
			{
				Name:   "load",
				Usage:  "print the number stored in the file",
				Action: a.load,
			},
			{
				Name:      "save",
				Usage:     "store a decimal number in the file",
				ArgsUsage: "DECIMAL",
				Action:    a.save,
			},
			{
				Name:      "dump",
				Usage:     "dump the ring holding a decimal number",
				ArgsUsage: "DECIMAL",
				Action:    a.dump,
			},
		},
	}
}

type app struct {
	config *Config
	log    *logrus.Logger
	out    io.Writer
}

func args(c *cli.Context, n int) error {
	if c.Args().Len() != n {
		return fmt.Errorf(
			"%s: expected %d argument(s), got %d",
			c.Command.Name,
			n,
			c.Args().Len(),
		)
	}

	return nil
}

// parse converts a decimal argument, warning when it was defaulted to zero.
func (a *app) parse(c *cli.Context, s string) (*ring.Ring, error) {
	r, defaulted, err := decimal.FromDecimal(s, a.config.Base)
	if err != nil {
		return nil, err
	}

	if defaulted {
		a.log.WithField("command", c.Command.Name).
			WithField("input", s).
			Warn("malformed decimal input, using zero")
	}

	return r, nil
}

func (a *app) print(r *ring.Ring) {
	fmt.Fprintf(a.out, "%s (base %d) = %s\n", r, r.Base(), decimal.ToDecimal(r))
}

func (a *app) digits(c *cli.Context) error {
	if err := args(c, 1); err != nil {
		return err
	}

	r, err := a.parse(c, c.Args().First())
	if err != nil {
		return err
	}

	a.print(r)

	return nil
}

func (a *app) decimal(c *cli.Context) error {
	digits := make([]byte, 0, c.Args().Len())
	for _, arg := range c.Args().Slice() {
		d, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("digit %q: %w", arg, err)
		}

		if d < 0 || d >= a.config.Base {
			return fmt.Errorf("digit %d outside [0, %d)", d, a.config.Base)
		}

		digits = append(digits, byte(d))
	}

	r, err := ring.FromDigits(a.config.Base, digits...)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, decimal.ToDecimal(r))

	return nil
}

func (a *app) rebase(c *cli.Context) error {
	if err := args(c, 1); err != nil {
		return err
	}

	r, err := a.parse(c, c.Args().First())
	if err != nil {
		return err
	}

	rebased, err := decimal.ChangeBase(r, c.Int("to"))
	if err != nil {
		return err
	}

	a.log.WithField("from", r.Base()).
		WithField("to", rebased.Base()).
		Debug("rebased")

	a.print(rebased)

	return nil
}

func (a *app) arithmetic(op func(*ring.Ring, decimal.Decimaler) (*ring.Ring, error)) cli.ActionFunc {
	return func(c *cli.Context) error {
		if err := args(c, 2); err != nil {
			return err
		}

		x, err := a.parse(c, c.Args().Get(0))
		if err != nil {
			return err
		}

		y, err := a.parse(c, c.Args().Get(1))
		if err != nil {
			return err
		}

		result, err := op(x, decimal.Number{Ring: y})
		if err != nil {
			return err
		}

		a.print(result)

		return nil
	}
}

func (a *app) sort(c *cli.Context) error {
	if err := args(c, 1); err != nil {
		return err
	}

	r, err := a.parse(c, c.Args().First())
	if err != nil {
		return err
	}

	if c.Bool("desc") {
		r.SortDescending()
	} else {
		r.SortAscending()
	}

	a.print(r)

	return nil
}

func (a *app) shift(c *cli.Context) error {
	if err := args(c, 1); err != nil {
		return err
	}

	r, err := a.parse(c, c.Args().First())
	if err != nil {
		return err
	}

	count := c.Int("count")
	if count < 0 {
		return fmt.Errorf("negative count: %d", count)
	}

	for i := 0; i < count; i++ {
		if c.Bool("right") {
			r.ShiftRight()
		} else {
			r.ShiftLeft()
		}
	}

	a.print(r)

	return nil
}

func (a *app) load(c *cli.Context) error {
	if err := args(c, 0); err != nil {
		return err
	}

	r, defaulted, err := store.Load(a.config.File, a.config.Base)
	if err != nil {
		return err
	}

	if defaulted {
		a.log.WithField("file", a.config.File).
			Warn("malformed decimal in file, using zero")
	}

	a.print(r)

	return nil
}

func (a *app) save(c *cli.Context) error {
	if err := args(c, 1); err != nil {
		return err
	}

	r, err := a.parse(c, c.Args().First())
	if err != nil {
		return err
	}

	err = store.Save(a.config.File, r)
	if err != nil {
		return err
	}

	a.log.WithField("file", a.config.File).
		WithField("digits", r.Len()).
		Info("saved")

	return nil
}

func (a *app) dump(c *cli.Context) error {
	if err := args(c, 1); err != nil {
		return err
	}

	r, err := a.parse(c, c.Args().First())
	if err != nil {
		return err
	}

	spew.Fdump(a.out, r)

	return nil
}
