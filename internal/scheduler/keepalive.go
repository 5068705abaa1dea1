package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/rlourenco/commission-api/internal/config"
	"github.com/rlourenco/commission-api/pkg/utils"
)

// KeepAliveConfig representa a configuração do agendador de keep-alive
type KeepAliveConfig struct {
	CronSchedule string
	TargetURL    string
	Enabled      bool
}

// KeepAliveService pinga periodicamente o próprio healthcheck para impedir
// que o provedor de hospedagem hiberne a instância por inatividade
type KeepAliveService struct {
	scheduler     *gocron.Scheduler
	config        KeepAliveConfig
	pingRunning   bool
	pingMutex     sync.Mutex
	lastPingAt    time.Time
	lastPingError error
}

// NewKeepAliveService cria uma nova instância do serviço de keep-alive
func NewKeepAliveService(appConfig *config.Config) *KeepAliveService {
	keepAliveConfig := KeepAliveConfig{
		CronSchedule: appConfig.KeepAlive.CronSchedule,
		TargetURL:    appConfig.KeepAlive.TargetURL,
		Enabled:      appConfig.KeepAlive.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": keepAliveConfig.CronSchedule,
		"target_url":    keepAliveConfig.TargetURL,
		"enabled":       keepAliveConfig.Enabled,
	}).Info("Configuração do agendador de keep-alive carregada")

	return &KeepAliveService{
		scheduler: scheduler,
		config:    keepAliveConfig,
	}
}

// Start inicia o agendador
func (s *KeepAliveService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Keep-alive desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de keep-alive")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.ping()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar keep-alive: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de keep-alive")
		s.scheduler.Stop()
	}()

	return nil
}

// ping faz uma requisição ao healthcheck configurado
func (s *KeepAliveService) ping() {
	s.pingMutex.Lock()
	if s.pingRunning {
		s.pingMutex.Unlock()
		logrus.Info("Ping de keep-alive já em andamento, ignorando")
		return
	}
	s.pingRunning = true
	s.pingMutex.Unlock()

	defer func() {
		s.pingMutex.Lock()
		s.pingRunning = false
		s.pingMutex.Unlock()
	}()

	_, err := utils.MakeRequest(s.config.TargetURL)

	s.pingMutex.Lock()
	s.lastPingAt = time.Now()
	s.lastPingError = err
	s.pingMutex.Unlock()

	if err != nil {
		logrus.WithError(err).Warn("Ping de keep-alive falhou")
		return
	}

	logrus.WithField("target_url", s.config.TargetURL).Debug("Ping de keep-alive concluído")
}

// LastPing retorna o horário e o resultado do último ping executado
func (s *KeepAliveService) LastPing() (time.Time, error) {
	s.pingMutex.Lock()
	defer s.pingMutex.Unlock()
	return s.lastPingAt, s.lastPingError
}
