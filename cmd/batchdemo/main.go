// Command batchdemo exercises the full batch-builder/dispatcher/transport
// stack end-to-end against a real Valkey/Redis server: build a pipeline,
// submit it, and print its decoded results.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/edirooss/valkeybatch/batch"
	"github.com/edirooss/valkeybatch/bval"
	"github.com/edirooss/valkeybatch/config"
	"github.com/edirooss/valkeybatch/dispatch"
	"github.com/edirooss/valkeybatch/redistransport"
)

func main() {
	addr := flag.String("addr", "127.0.0.1:6379", "Valkey/Redis address")
	flag.Parse()

	logConfig := zap.NewDevelopmentConfig()
	logConfig.EncoderConfig.TimeKey = ""
	logConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	logConfig.DisableStacktrace = true
	logConfig.DisableCaller = true
	log := zap.Must(logConfig.Build())
	defer log.Sync()
	log = log.Named("main")

	tr := redistransport.NewStandalone(config.DefaultStandaloneConfig(*addr), log)
	defer tr.Close()

	d := dispatch.New(tr, log)

	b := batch.NewStandaloneBatch(false).
		SetString("batchdemo:greeting", "hello").
		Incr("batchdemo:counter").
		Set(bval.FromText("batchdemo:binary"), bval.FromBytes([]byte{0x00, 0xFF, 0x01, 0xFE})).
		Get("batchdemo:greeting").
		Dump("batchdemo:binary")

	if err := b.Err(); err != nil {
		log.Fatal("batch build failed", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := d.Exec(ctx, b)
	if err != nil {
		log.Error("exec failed", zap.Error(err))
		os.Exit(1)
	}

	for i, v := range res.Values {
		fmt.Printf("[%d] %#v\n", i, v)
	}
}
