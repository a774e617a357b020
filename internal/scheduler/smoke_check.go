package scheduler

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/nalk-ai-api/internal/config"
	"github.com/vfg2006/nalk-ai-api/internal/domain"
	"github.com/vfg2006/nalk-ai-api/internal/usecases/processing"
	"github.com/vfg2006/nalk-ai-api/pkg/metrics"
)

// SmokeCheckService executa periodicamente o pipeline com a carga fixa de teste
// e registra o resultado nos logs e métricas
type SmokeCheckService struct {
	scheduler    *gocron.Scheduler
	processor    processing.Processor
	cronSchedule string
	enabled      bool
	running      bool
	mutex        sync.Mutex
	lastReport   *domain.SmokeTestReport
	lastRunAt    time.Time
}

// NewSmokeCheckService cria o agendador do teste periódico
func NewSmokeCheckService(processor processing.Processor, appConfig *config.Config) *SmokeCheckService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": appConfig.SmokeCheck.CronSchedule,
		"enabled":       appConfig.SmokeCheck.Enabled,
	}).Info("Configuração do teste periódico carregada")

	return &SmokeCheckService{
		scheduler:    gocron.NewScheduler(time.Local),
		processor:    processor,
		cronSchedule: appConfig.SmokeCheck.CronSchedule,
		enabled:      appConfig.SmokeCheck.Enabled,
	}
}

// Start inicia o agendador. O agendador para quando o contexto é cancelado.
func (s *SmokeCheckService) Start(ctx context.Context) error {
	if !s.enabled {
		logrus.Info("Teste periódico desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.cronSchedule).Info("Iniciando agendador do teste periódico")

	_, err := s.scheduler.Cron(s.cronSchedule).Do(func() {
		s.Run(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar teste periódico: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do teste periódico")
		s.scheduler.Stop()
	}()

	return nil
}

// Run executa o teste uma vez. Execuções sobrepostas são ignoradas.
func (s *SmokeCheckService) Run(ctx context.Context) *domain.SmokeTestReport {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		logrus.Info("Teste periódico já em andamento, ignorando")
		return nil
	}
	s.running = true
	s.mutex.Unlock()

	defer func() {
		s.mutex.Lock()
		s.running = false
		s.mutex.Unlock()
	}()

	startTime := time.Now()
	report := s.processor.SmokeTest(ctx)

	success := report != nil && report.Result != nil && report.Result.Success
	metrics.SmokeChecks.WithLabelValues(strconv.FormatBool(success)).Inc()

	entry := logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"success":  success,
	})
	if success {
		entry.Info("Teste periódico concluído")
	} else {
		entry.Error("Teste periódico falhou")
	}

	s.mutex.Lock()
	s.lastReport = report
	s.lastRunAt = startTime
	s.mutex.Unlock()

	return report
}

// LastRun retorna o último relatório e o horário em que foi gerado
func (s *SmokeCheckService) LastRun() (*domain.SmokeTestReport, time.Time) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.lastReport, s.lastRunAt
}
