package container

import (
	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/anujyadav2244/cricriser/config"
	"github.com/anujyadav2244/cricriser/internal/application"
	"github.com/anujyadav2244/cricriser/pkg/helpers"
	"github.com/anujyadav2244/cricriser/pkg/mailer"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	redisClient *redis.Client
	gcsClient   *storage.Client

	jwtManager *helpers.JWTManager
	sessions   *application.SessionStore

	mailgunClient *mailer.Mailgun
	rabbitPub     *helpers.RabbitPublisher
	esClient      *elasticsearch.Client
)

func SetConfig(c *config.Config)   { cfg = c }
func GetConfig() *config.Config    { return cfg }
func SetLogger(l *logrus.Logger)   { logger = l }
func GetLogger() *logrus.Logger    { return logger }
func SetPGPool(p *pgxpool.Pool)    { pgPool = p }
func GetPGPool() *pgxpool.Pool     { return pgPool }
func SetRedis(r *redis.Client)     { redisClient = r }
func GetRedis() *redis.Client      { return redisClient }
func SetGCS(s *storage.Client)     { gcsClient = s }
func GetGCS() *storage.Client      { return gcsClient }
func SetJWT(m *helpers.JWTManager) { jwtManager = m }
func GetJWT() *helpers.JWTManager  { return jwtManager }

func SetSessions(s *application.SessionStore) { sessions = s }
func GetSessions() *application.SessionStore  { return sessions }

func SetMailgun(m *mailer.Mailgun)            { mailgunClient = m }
func GetMailgun() *mailer.Mailgun             { return mailgunClient }
func SetRabbitPub(p *helpers.RabbitPublisher) { rabbitPub = p }
func GetRabbitPub() *helpers.RabbitPublisher  { return rabbitPub }
func SetES(c *elasticsearch.Client)           { esClient = c }
func GetES() *elasticsearch.Client            { return esClient }
