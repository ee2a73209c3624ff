package app

import (
	"context"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/boobalamurugan/assistant/internal/chat"
	"github.com/boobalamurugan/assistant/internal/eventlog"
	"github.com/boobalamurugan/assistant/internal/httpapi"
	"github.com/boobalamurugan/assistant/internal/jobs"
	"github.com/boobalamurugan/assistant/internal/llm"
	"github.com/boobalamurugan/assistant/internal/persona"
	"github.com/boobalamurugan/assistant/internal/stt"
	"github.com/boobalamurugan/assistant/internal/tts"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type App struct {
	cfg        Config
	logger     *log.Logger
	db         *pgxpool.Pool // optional, event log only
	profile    *persona.Profile
	session    *chat.Session
	synth      *tts.Synthesizer
	paidTTS    tts.Client
	sttc       stt.Client
	pool       *jobs.Pool
	eventLog   *eventlog.Logger
	sessionID  string
	httpClient *http.Client // Shared HTTP client with connection pooling for provider calls
}

func New(cfg Config, logger *log.Logger) (*App, error) {
	// Shared HTTP client with connection pooling.
	// Keeps TCP connections alive to reduce latency for repeated TTS calls.
	httpClient := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   5 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:          100,
			MaxIdleConnsPerHost:   10,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   5 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
		},
	}

	// The event log database is optional.
	var db *pgxpool.Pool
	if cfg.DatabaseURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var err error
		db, err = pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := db.Ping(ctx); err != nil {
			db.Close()
			return nil, err
		}
	}

	profile, err := persona.Load(cfg.ProfilePath)
	if err != nil {
		logger.Printf("profile load failed, using fallback persona: %v", err)
	} else {
		logger.Printf("loaded persona profile for %s", profile.Name)
	}

	if cfg.GeminiAPIKey == "" {
		logger.Printf("WARNING: GEMINI_API_KEY not set; chat replies will fail with api_error")
	}
	model := llm.NewGeminiClient(llm.GeminiConfig{
		APIKey:     cfg.GeminiAPIKey,
		Model:      cfg.GeminiModel,
		HTTPClient: httpClient,
	})
	session := chat.NewSession(model, profile.PrimingMessage())

	free := tts.NewStreamElementsClient(tts.StreamElementsConfig{
		Voice:      cfg.FreeTTSVoice,
		HTTPClient: httpClient,
	})

	// Paid TTS only when the key is present; the fallback synthesizer
	// skips a nil stage.
	var paidTTS tts.Client
	if cfg.ElevenLabsAPIKey != "" {
		paid := tts.NewElevenLabsClient(tts.ElevenLabsConfig{
			APIKey:     cfg.ElevenLabsAPIKey,
			VoiceID:    cfg.TTSVoiceID,
			Stability:  cfg.TTSStability,
			Similarity: cfg.TTSSimilarity,
			HTTPClient: httpClient,
		})
		paidTTS = tts.NewCachedClient(paid, tts.NewCache(cfg.TTSCacheSize))
	} else {
		logger.Printf("WARNING: ELEVEN_LABS_API_KEY not set; only the free TTS provider is available")
	}
	synth := tts.NewSynthesizer(free, paidTTS, logger)

	var sttc stt.Client
	if cfg.AssemblyAIAPIKey != "" {
		sttc = stt.NewAssemblyAIClient(stt.AssemblyAIConfig{
			APIKey:     cfg.AssemblyAIAPIKey,
			HTTPClient: httpClient,
		})
	} else {
		logger.Printf("WARNING: ASSEMBLY_AI_API_KEY not set; speech recognition is disabled")
	}

	return &App{
		cfg:        cfg,
		logger:     logger,
		db:         db,
		profile:    profile,
		session:    session,
		synth:      synth,
		paidTTS:    paidTTS,
		sttc:       sttc,
		pool:       jobs.NewPool(cfg.TTSWorkers),
		eventLog:   eventlog.New(db),
		sessionID:  uuid.NewString(),
		httpClient: httpClient,
	}, nil
}

func (a *App) Router() http.Handler {
	routerCfg := httpapi.RouterConfig{
		AudioDeadline: a.cfg.AudioDeadline,
		SessionID:     a.sessionID,
	}
	return httpapi.NewRouter(routerCfg, a.logger, a.profile, a.session, a.synth, a.paidTTS, a.sttc, a.pool, a.eventLog)
}

func (a *App) Close() error {
	if a.db != nil {
		a.db.Close()
	}
	return nil
}
