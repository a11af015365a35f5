// mulmod times repeated Montgomery multiplication and exponentiation modulo
// a large odd modulus.
package main

import (
	"errors"
	"fmt"
	"math/big"
	"os"
	"time"

	log "github.com/inconshreveable/log15"
	"gopkg.in/urfave/cli.v1"

	"montgomery.mleku.dev"
)

var (
	configFileFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	aFlag = cli.StringFlag{
		Name:  "a",
		Usage: "First operand (hex)",
		Value: defaultA,
	}
	bFlag = cli.StringFlag{
		Name:  "b",
		Usage: "Second operand or exponent (hex)",
		Value: defaultB,
	}
	mFlag = cli.StringFlag{
		Name:  "m",
		Usage: "Odd modulus (hex)",
		Value: defaultM,
	}
	itersFlag = cli.IntFlag{
		Name:  "iters",
		Usage: "Number of repetitions (default 1000000, 100 for exp)",
	}
	windowFlag = cli.UintFlag{
		Name:  "window",
		Usage: "Exponentiation window width in bits",
		Value: defaultConfig.Window,
	}
	checkFlag = cli.BoolFlag{
		Name:  "check",
		Usage: "Verify the result against math/big",
	}
	verbosityFlag = cli.IntFlag{
		Name:  "verbosity",
		Usage: "Logging verbosity: 0=crit, 1=error, 2=warn, 3=info, 4=debug",
		Value: int(log.LvlInfo),
	}

	runFlags = []cli.Flag{
		configFileFlag,
		aFlag,
		bFlag,
		mFlag,
		itersFlag,
		windowFlag,
		checkFlag,
		verbosityFlag,
	}

	expCommand = cli.Command{
		Action:    migrateFlags(runExp),
		Before:    migrateFlags(setupLogging),
		Name:      "exp",
		Usage:     "Time a^b mod m",
		ArgsUsage: " ",
		Flags:     runFlags,
		Description: `
The exp command computes a^b mod m through a Montgomery context, repeating
the exponentiation --iters times.`,
	}
)

var app = cli.NewApp()

func init() {
	app.Name = "mulmod"
	app.Usage = "Montgomery modular arithmetic benchmark"
	app.Action = runMulmod
	app.HideVersion = true
	app.Commands = []cli.Command{
		expCommand,
	}
	app.Flags = runFlags
	app.Before = setupLogging
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// migrateFlags makes all command-local flag values visible to the global
// lookups the config code uses.
func migrateFlags(action func(ctx *cli.Context) error) func(*cli.Context) error {
	return func(ctx *cli.Context) error {
		for _, name := range ctx.FlagNames() {
			if ctx.IsSet(name) {
				ctx.GlobalSet(name, ctx.String(name))
			}
		}
		return action(ctx)
	}
}

func setupLogging(ctx *cli.Context) error {
	lvl := log.Lvl(ctx.GlobalInt(verbosityFlag.Name))
	h := log.LvlFilterHandler(lvl, log.StreamHandler(os.Stderr, log.TerminalFormat()))
	log.Root().SetHandler(h)
	montgomery.SetLogHandler(h)
	return nil
}

// runMulmod is the default action: a_bar = a_bar * b_bar repeated in the
// Montgomery domain.
func runMulmod(ctx *cli.Context) error {
	if args := ctx.Args(); len(args) > 0 {
		return fmt.Errorf("invalid command: %q", args[0])
	}
	cfg, err := makeConfig(ctx, defaultConfig)
	if err != nil {
		return err
	}
	res, elapsed, err := mulmod(cfg)
	if err != nil {
		return err
	}
	fmt.Printf("%x\n", res)
	report(cfg, elapsed)
	return nil
}

func runExp(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx, defaultExpConfig)
	if err != nil {
		return err
	}
	res, elapsed, err := expmod(cfg)
	if err != nil {
		return err
	}
	fmt.Printf("%x\n", res)
	report(cfg, elapsed)
	return nil
}

func report(cfg mulmodConfig, elapsed time.Duration) {
	var avg time.Duration
	if cfg.Iterations > 0 {
		avg = elapsed / time.Duration(cfg.Iterations)
	}
	log.Info("Benchmark finished", "iterations", cfg.Iterations, "elapsed", elapsed, "average", avg)
}

// mulmod returns a*b^iters mod m computed with iters Montgomery
// multiplications, and the time the loop took.
func mulmod(cfg mulmodConfig) (*big.Int, time.Duration, error) {
	if cfg.Iterations < 0 {
		return nil, 0, errors.New("iteration count must not be negative")
	}
	a, b, m, err := cfg.operands()
	if err != nil {
		return nil, 0, err
	}
	mod, err := montgomery.NewModulusFromBig(m, montgomery.WithWindow(cfg.Window))
	if err != nil {
		return nil, 0, err
	}
	log.Info("Running Montgomery multiplication", "bits", mod.BitLen(), "limbs", mod.Limbs(), "iterations", cfg.Iterations)

	aBar, bBar := mod.ToMontBig(a), mod.ToMontBig(b)
	start := time.Now()
	for i := 0; i < cfg.Iterations; i++ {
		aBar = mod.Mul(aBar, aBar, bBar)
	}
	elapsed := time.Since(start)
	res := mod.FromMontBig(aBar)

	if cfg.Check {
		want := new(big.Int).Mod(a, m)
		bm := new(big.Int).Mod(b, m)
		for i := 0; i < cfg.Iterations; i++ {
			want.Mul(want, bm)
			want.Mod(want, m)
		}
		if res.Cmp(want) != 0 {
			return nil, elapsed, fmt.Errorf("result mismatch: have %x, want %x", res, want)
		}
		log.Info("Result matches math/big")
	}
	return res, elapsed, nil
}

// expmod returns a^b mod m, computed iters times (at least once), and the
// time the loop took.
func expmod(cfg mulmodConfig) (*big.Int, time.Duration, error) {
	if cfg.Iterations < 0 {
		return nil, 0, errors.New("iteration count must not be negative")
	}
	a, b, m, err := cfg.operands()
	if err != nil {
		return nil, 0, err
	}
	mod, err := montgomery.NewModulusFromBig(m, montgomery.WithWindow(cfg.Window))
	if err != nil {
		return nil, 0, err
	}
	log.Info("Running modular exponentiation", "bits", mod.BitLen(), "exponent", b.BitLen(),
		"window", mod.Window(), "iterations", cfg.Iterations)

	var res *big.Int
	start := time.Now()
	for i := 0; i < cfg.Iterations || res == nil; i++ {
		if res, err = mod.ExpBig(a, b); err != nil {
			return nil, 0, err
		}
	}
	elapsed := time.Since(start)

	if cfg.Check {
		want := new(big.Int).Exp(a, b, m)
		if res.Cmp(want) != 0 {
			return nil, elapsed, fmt.Errorf("result mismatch: have %x, want %x", res, want)
		}
		log.Info("Result matches math/big")
	}
	return res, elapsed, nil
}
