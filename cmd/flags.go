package cmd

import "github.com/spf13/pflag"

// bindFlag ties a flag to a config key. Lookup only fails on a typo, which is a programming error.
func bindFlag(key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}
