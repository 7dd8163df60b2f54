package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/theflywheel/chainhash"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

func newLogger(logFile string, debug bool) *zap.Logger {
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	sink := zapcore.Lock(os.Stderr)
	if logFile != "" {
		sink = zapcore.AddSync(&lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		})
	}

	encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	return zap.New(zapcore.NewCore(encoder, sink, level))
}

func main() {
	buckets := flag.Int("buckets", chainhash.DefaultBuckets, "Initial bucket count")
	numKeys := flag.Int("keys", 10, "Number of keys to insert")
	logFile := flag.String("log-file", "", "Write logs to this file (rotated) instead of stderr")
	debug := flag.Bool("debug", false, "Log every table rebuild")
	flag.Parse()

	logger := newLogger(*logFile, *debug)
	defer logger.Sync()

	if *buckets < 1 {
		logger.Fatal("invalid bucket count", zap.Int("buckets", *buckets))
	}

	table := chainhash.New[string, int](chainhash.StringHasher{},
		chainhash.WithInitialBuckets(*buckets),
		chainhash.WithLogger(logger),
	)

	fmt.Println("Hash table created successfully")

	// Insert some data
	for i := 0; i < *numKeys; i++ {
		table.Set(fmt.Sprintf("key-%d", i), i*100)
	}

	fmt.Printf("Inserted %d key-value pairs (%d buckets, load factor %.2f)\n",
		table.Len(), table.Buckets(), table.LoadFactor())

	// Retrieve and display some values
	for i := 0; i < *numKeys+5; i += 2 {
		key := fmt.Sprintf("key-%d", i)
		if value, found := table.Lookup(key); found {
			fmt.Printf("%s => %d\n", key, value)
		} else {
			fmt.Printf("%s not found\n", key)
		}
	}

	// Update a value
	table.Set("key-2", 999)
	fmt.Printf("Updated key-2 => %d\n", table.Get("key-2", -1))

	// Delete a value
	if value, ok := table.Delete("key-3"); ok {
		fmt.Printf("Deleted key-3 (was %d)\n", value)
	}
	if _, ok := table.Delete("missing"); !ok {
		fmt.Println("Delete of missing key reported not found")
	}

	for key, value := range table.All() {
		fmt.Printf("%s: %d\n", key, value)
	}

	logger.Info("example completed",
		zap.Int("entries", table.Len()),
		zap.Int("buckets", table.Buckets()),
	)
}
