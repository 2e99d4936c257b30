package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"

	"github.com/contoso/sre-demo-agent/internal/adapter"
	"github.com/contoso/sre-demo-agent/internal/envconf"
	"github.com/contoso/sre-demo-agent/internal/logger"
	"github.com/contoso/sre-demo-agent/internal/repository"
	"github.com/contoso/sre-demo-agent/pkg/fixtures"
	"github.com/contoso/sre-demo-agent/pkg/logstore"
	"github.com/contoso/sre-demo-agent/pkg/logstore/memorystore"
)

type logWriter struct{}

func (lw *logWriter) Write(line string) error {
	fmt.Println(line)
	return nil
}

func main() {
	godotenv.Load()

	envDecoderConf := &envconf.EnvDecoderConf{}

	if err := envdecode.StrictDecode(envDecoderConf); err != nil {
		logger.NewErrorConsole(true).Fatal().Caller().Msgf("could not decode env conf: %v", err)
		os.Exit(1)
	}

	l := logger.NewConsole(envDecoderConf.Debug)

	var generate bool
	var validate bool
	var seed bool
	var tailLogs bool
	var fixtureDir string

	flag.BoolVar(&generate, "generate", false, "write a fresh fixture set to the fixture directory")
	flag.BoolVar(&validate, "validate", false, "check the fixture set for shape and consistency errors")
	flag.BoolVar(&seed, "seed", false, "hydrate the database from the fixture set")
	flag.BoolVar(&tailLogs, "tail", false, "follow the demo application log stream")
	flag.StringVar(&fixtureDir, "fixture-dir", envDecoderConf.FixtureDir, "fixture directory to operate on")

	flag.Parse()

	if !generate && !validate && !seed && !tailLogs {
		flag.Usage()
		os.Exit(1)
	}

	if generate {
		set := fixtures.Generate()

		if err := fixtures.WriteSet(fixtureDir, set); err != nil {
			l.Fatal().Caller().Msgf("could not write fixture set: %v", err)
		}

		l.Info().Caller().Msgf("wrote fixture set to %s", fixtureDir)
	}

	if validate {
		set, err := fixtures.Load(fixtureDir)

		if err != nil {
			l.Fatal().Caller().Msgf("could not load fixture set: %v", err)
		}

		report := fixtures.Validate(set)

		for _, msg := range report.Errors {
			fmt.Println(msg)
		}

		if !report.OK() {
			l.Fatal().Caller().Msgf("fixture set has %d validation errors", len(report.Errors))
		}

		l.Info().Caller().Msgf("fixture set is valid")
	}

	if seed {
		set, err := fixtures.Load(fixtureDir)

		if err != nil {
			l.Fatal().Caller().Msgf("could not load fixture set: %v", err)
		}

		db, err := adapter.New(&envDecoderConf.DBConf)

		if err != nil {
			l.Fatal().Caller().Msgf("could not create database connection: %v", err)
		}

		if err := repository.AutoMigrate(db, false); err != nil {
			l.Fatal().Caller().Msgf("auto migration failed: %v", err)
		}

		if err := fixtures.Seed(repository.NewRepository(db), set); err != nil {
			l.Fatal().Caller().Msgf("could not seed database: %v", err)
		}

		l.Info().Caller().Msgf("seeded database from %s", fixtureDir)
	}

	if tailLogs {
		logStore, err := memorystore.New("application", memorystore.Options{Dir: envDecoderConf.LogStoreConf.LogStoreDir})

		if err != nil {
			l.Fatal().Caller().Msgf("memory-based log store setup failed: %v", err)
		}

		stopChan := make(chan struct{}, 1)

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

		go func() {
			<-sig
			stopChan <- struct{}{}
		}()

		if err := logStore.Tail(logstore.TailOptions{Start: time.Now()}, &logWriter{}, stopChan); err != nil {
			l.Fatal().Caller().Msgf("could not tail logs: %v", err)
		}
	}
}
