package main

import (
	"bufio"
	"errors"
	"fmt"
	"math/big"
	"os"
	"reflect"
	"unicode"

	"github.com/naoina/toml"
	"gopkg.in/urfave/cli.v1"
)

// The fixture operands: two 1024-bit values and an odd 2048-bit modulus.
const (
	defaultA = "4cf98e54ab14095eccfde5bec1255f69f57a7e6ee86cf3e670c871c9aa8c3c3a15ad65ffdb8ea85f1c585e862426e3911f017c438a72ec8fe6c989d96382ae032fada0f14d50db28922f88059c3d070934a916ec8e9f8d7d13e682b9e662513d22576c826f183a07e9f9da5925dc08e301870cc357c5addb6c723e9003a77179"
	defaultB = "3cf98e54ab14095eccfde5bec1255f69f57a7e6ee86cf3e670c871c9aa8c3c3a15ad65ffdb8ea85f1c585e862426e3911f017c438a72ec8fe6c989d96382ae032fada0f14d50db28922f88059c3d070934a916ec8e9f8d7d13e682b9e662513d22576c826f183a07e9f9da5925dc08e301870cc357c5addb6c723e9003a77179"
	defaultM = "8cf98e54ab14095eccfde5bec1255f69f57a7e6ee86cf3e670c871c9aa8c3c3a15ad65ffdb8ea85f1c585e862426e3911f017c438a72ec8fe6c989d96382ae032fada0f14d50db28922f88059c3d070934a916ec8e9f8d7d13e682b9e662513d22576c826f183a07e9f9da5925dc08e301870cc357c5addb6c723e9003a771798cf98e54ab14095eccfde5bec1255f69f57a7e6ee86cf3e670c871c9aa8c3c3a15ad65ffdb8ea85f1c585e862426e3911f017c438a72ec8fe6c989d96382ae032fada0f14d50db28922f88059c3d070934a916ec8e9f8d7d13e682b9e662513d22576c826f183a07e9f9da5925dc08e301870cc357c5addb6c723e9003a77179"
)

// mulmodConfig is the full set of knobs. Operands are hex strings.
type mulmodConfig struct {
	A          string
	B          string
	M          string
	Iterations int
	Window     uint
	Check      bool
}

var defaultConfig = mulmodConfig{
	A:          defaultA,
	B:          defaultB,
	M:          defaultM,
	Iterations: 1000000,
	Window:     6,
}

// defaultExpConfig is the baseline of the exp command. A 2048-bit
// exponentiation costs about two thousand multiplications, so it runs far
// fewer rounds.
var defaultExpConfig = mulmodConfig{
	A:          defaultA,
	B:          defaultB,
	M:          defaultM,
	Iterations: 100,
	Window:     6,
}

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		link := ""
		if unicode.IsUpper(rune(rt.Name()[0])) && rt.PkgPath() != "main" {
			link = fmt.Sprintf(", see https://godoc.org/%s#%s for available fields", rt.PkgPath(), rt.Name())
		}
		return fmt.Errorf("field '%s' is not defined in %s%s", field, rt.String(), link)
	},
}

func loadConfig(file string, cfg *mulmodConfig) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

// makeConfig starts from base, applies the config file if one is given and
// then every flag set on the command line.
func makeConfig(ctx *cli.Context, base mulmodConfig) (mulmodConfig, error) {
	cfg := base
	if file := ctx.GlobalString(configFileFlag.Name); file != "" {
		if err := loadConfig(file, &cfg); err != nil {
			return cfg, err
		}
	}
	if ctx.GlobalIsSet(aFlag.Name) {
		cfg.A = ctx.GlobalString(aFlag.Name)
	}
	if ctx.GlobalIsSet(bFlag.Name) {
		cfg.B = ctx.GlobalString(bFlag.Name)
	}
	if ctx.GlobalIsSet(mFlag.Name) {
		cfg.M = ctx.GlobalString(mFlag.Name)
	}
	if ctx.GlobalIsSet(itersFlag.Name) {
		cfg.Iterations = ctx.GlobalInt(itersFlag.Name)
	}
	if ctx.GlobalIsSet(windowFlag.Name) {
		cfg.Window = ctx.GlobalUint(windowFlag.Name)
	}
	if ctx.GlobalIsSet(checkFlag.Name) {
		cfg.Check = ctx.GlobalBool(checkFlag.Name)
	}
	return cfg, nil
}

// operands parses the hex operands.
func (cfg *mulmodConfig) operands() (a, b, m *big.Int, err error) {
	parse := func(name, s string) (*big.Int, error) {
		v, ok := new(big.Int).SetString(s, 16)
		if !ok {
			return nil, fmt.Errorf("invalid hex value for %s: %q", name, s)
		}
		return v, nil
	}
	if a, err = parse("a", cfg.A); err != nil {
		return
	}
	if b, err = parse("b", cfg.B); err != nil {
		return
	}
	m, err = parse("m", cfg.M)
	return
}
