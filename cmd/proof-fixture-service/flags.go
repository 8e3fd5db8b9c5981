package main

import (
	"github.com/urfave/cli/v2"
)

const envVarPrefix = "FIXTURE_SERVICE"

func PrefixEnvVar(suffix string) []string {
	return []string{envVarPrefix + "_" + suffix}
}

var (
	PortFlag = &cli.IntFlag{
		Name:    "port",
		Usage:   "Port to run the RPC service on",
		EnvVars: PrefixEnvVar("PORT"),
		Value:   8560,
	}
	FixturesPathFlag = &cli.StringFlag{
		Name:    "fixtures-path",
		Usage:   "Local directory to write fixture files to",
		EnvVars: PrefixEnvVar("FIXTURES_PATH"),
		Value:   "fixtures/",
	}
	S3BucketFlag = &cli.StringFlag{
		Name:    "s3-bucket",
		Usage:   "S3 bucket to store fixtures in instead of the local filesystem",
		EnvVars: PrefixEnvVar("S3_BUCKET"),
	}
	S3PrefixFlag = &cli.StringFlag{
		Name:    "s3-prefix",
		Usage:   "Key prefix for fixtures stored in S3",
		EnvVars: PrefixEnvVar("S3_PREFIX"),
		Value:   "fixtures",
	}
)

var Flags = []cli.Flag{
	PortFlag,
	FixturesPathFlag,
	S3BucketFlag,
	S3PrefixFlag,
}
