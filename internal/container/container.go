package container

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/Observeo-tech/template-go-api/config"
	"github.com/Observeo-tech/template-go-api/internal/events"
	"github.com/Observeo-tech/template-go-api/internal/session"
	"github.com/Observeo-tech/template-go-api/pkg/helpers"
)

// app-level container to share constructed components across packages.
// Router modules auto-wire themselves from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	redisClient *redis.Client

	sessionStore *session.Store
	rabbitPub    *helpers.RabbitPublisher
	eventsPub    *events.Publisher
)

func SetConfig(c *config.Config) { cfg = c }
func GetConfig() *config.Config  { return cfg }
func SetLogger(l *logrus.Logger) { logger = l }
func GetLogger() *logrus.Logger  { return logger }
func SetPGPool(p *pgxpool.Pool)  { pgPool = p }
func GetPGPool() *pgxpool.Pool   { return pgPool }
func SetRedis(r *redis.Client)   { redisClient = r }
func GetRedis() *redis.Client    { return redisClient }

func SetSessionStore(s *session.Store)        { sessionStore = s }
func GetSessionStore() *session.Store         { return sessionStore }
func SetRabbitPub(p *helpers.RabbitPublisher) { rabbitPub = p }
func GetRabbitPub() *helpers.RabbitPublisher  { return rabbitPub }
func SetEventsPub(p *events.Publisher)        { eventsPub = p }
func GetEventsPub() *events.Publisher         { return eventsPub }
