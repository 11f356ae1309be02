package main

import (
	"context"
	"net"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"google.golang.org/grpc"

	"callistonft/api/grpcserver"
	pb "callistonft/api/marketpb"
	"callistonft/domain/market"
	"callistonft/infra/kafka"
	"callistonft/infra/outbox"
	"callistonft/infra/sequence"
	"callistonft/infra/wal"
	"callistonft/jobs/broadcaster"
	"callistonft/jobs/catalogfeed"
	"callistonft/service"
	"callistonft/snapshot"
)

type config struct {
	ListenAddr string `mapstructure:"listen_addr"`

	WALDir           string        `mapstructure:"wal_dir"`
	WALSegmentSize   int64         `mapstructure:"wal_segment_size"`
	OutboxDir        string        `mapstructure:"outbox_dir"`
	SnapshotDir      string        `mapstructure:"snapshot_dir"`
	SnapshotInterval time.Duration `mapstructure:"snapshot_interval"`

	KafkaBrokers      []string      `mapstructure:"kafka_brokers"`
	EventTopic        string        `mapstructure:"event_topic"`
	BroadcastInterval time.Duration `mapstructure:"broadcast_interval"`
	CatalogTopic      string        `mapstructure:"catalog_topic"`
	CatalogGroup      string        `mapstructure:"catalog_group"`
	CatalogIdentity   uint64        `mapstructure:"catalog_identity"`

	BidLockSeconds int64  `mapstructure:"bid_lock_seconds"`
	FeeReceiver    uint64 `mapstructure:"fee_receiver"`
	FeeRate        int64  `mapstructure:"fee_rate"`

	Minters []uint64 `mapstructure:"minters"`
	Admins  []uint64 `mapstructure:"admins"`
}

func loadConfig() (config, error) {
	viper.SetDefault("listen_addr", ":50051")
	viper.SetDefault("wal_dir", "./data/wal")
	viper.SetDefault("wal_segment_size", 2*1024*1024)
	viper.SetDefault("outbox_dir", "./data/outbox")
	viper.SetDefault("snapshot_dir", "./data/snapshots")
	viper.SetDefault("snapshot_interval", time.Minute)
	viper.SetDefault("kafka_brokers", []string{"localhost:9092"})
	viper.SetDefault("event_topic", "market.events")
	viper.SetDefault("broadcast_interval", 2*time.Second)
	viper.SetDefault("catalog_topic", "catalog.commands")
	viper.SetDefault("catalog_group", "registry")
	viper.SetDefault("bid_lock_seconds", market.DefaultBidLock)
	viper.SetDefault("fee_rate", 1000) // 1%

	viper.SetConfigName("config")
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("registry")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return config{}, err
		}
	}

	var cfg config
	if err := viper.Unmarshal(&cfg); err != nil {
		return config{}, err
	}
	return cfg, nil
}

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	// ---------------- Domain ----------------

	fees := market.NewFeeSchedule(market.FeeTier{
		Receiver: market.Account(cfg.FeeReceiver),
		Rate:     cfg.FeeRate,
	})
	roles := service.NewStaticRoles(cfg.Minters, cfg.Admins)
	m := market.New(fees, market.NewLedger(), roles, market.NopSink{})
	m.BidLock = cfg.BidLockSeconds

	// ---------------- Snapshot restore ----------------

	snapSeq, err := snapshot.Load(cfg.SnapshotDir, m)
	if err != nil {
		log.Fatal().Err(err).Msg("snapshot load failed")
	}
	if snapSeq > 0 {
		log.Info().Uint64("seq", snapSeq).Msg("snapshot restored")
	}

	seqGen := sequence.New(snapSeq)

	// ---------------- WAL replay ----------------

	if err := service.ReplayFromWAL(cfg.WALDir, snapSeq, m, seqGen, log); err != nil {
		log.Fatal().Err(err).Msg("wal replay failed")
	}

	// ---------------- Durability ----------------

	w, err := wal.Open(wal.Config{
		Dir:             cfg.WALDir,
		SegmentSize:     cfg.WALSegmentSize,
		SegmentDuration: time.Minute,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("wal init failed")
	}
	defer w.Close()

	ob, err := outbox.Open(cfg.OutboxDir)
	if err != nil {
		log.Fatal().Err(err).Msg("outbox init failed")
	}
	defer ob.Close()

	// ---------------- Service ----------------

	svc := service.NewTradeService(m, seqGen, w, ob, log)

	// ---------------- Background jobs ----------------

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc.StartSnapshotJob(ctx, cfg.SnapshotDir, cfg.SnapshotInterval)

	bc, err := broadcaster.New(ob, cfg.KafkaBrokers, cfg.EventTopic, cfg.BroadcastInterval, log)
	if err != nil {
		log.Fatal().Err(err).Msg("broadcaster init failed")
	}
	defer bc.Close()
	bc.Start(ctx)

	if cfg.CatalogIdentity != 0 {
		consumer := kafka.NewConsumer(cfg.KafkaBrokers, cfg.CatalogTopic, cfg.CatalogGroup)
		defer consumer.Close()

		feed := catalogfeed.New(consumer, svc, market.Account(cfg.CatalogIdentity), log)
		go feed.Run(ctx)
	}

	// ---------------- gRPC ----------------

	lis, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		log.Fatal().Err(err).Str("addr", cfg.ListenAddr).Msg("listen failed")
	}

	grpcSrv := grpc.NewServer()
	pb.RegisterMarketServer(grpcSrv, grpcserver.NewServer(svc, log))

	log.Info().Str("addr", cfg.ListenAddr).Msg("registry serving")

	if err := grpcSrv.Serve(lis); err != nil {
		log.Fatal().Err(err).Msg("grpc server exited")
	}
}
