// SPDX-License-Identifier: MIT

package main

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/serenipy/config"
)

// newLogger builds a production JSON logger, or a human-readable
// development logger outside production.
func newLogger(appEnv string) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if appEnv == config.EnvProduction {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}

	return logger.Named("serenipy"), nil
}
