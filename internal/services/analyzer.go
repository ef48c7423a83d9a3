package services

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"resumatch/resume-match/internal/models"
	"resumatch/resume-match/internal/repositories"
)

const snippetMaxLen = 2000

// AnalyzerService runs one submission through the whole pipeline: persist the
// document, call the engine, normalize, persist the analysis. The steps are
// strictly ordered; in particular the document hits durable storage before
// the engine call, so an engine failure never loses the original upload.
type AnalyzerService interface {
	Submit(ctx context.Context, userID uuid.UUID, filenameHint string, file io.Reader, jobDescription string) (*models.Analysis, error)
}

type analyzerService struct {
	docRepo      repositories.DocumentRepository
	analysisRepo repositories.AnalysisRepository
	storage      StorageService
	parser       DocumentParserService
	engine       EngineClient
	normalizer   MatchNormalizer
}

func NewAnalyzerService(
	docRepo repositories.DocumentRepository,
	analysisRepo repositories.AnalysisRepository,
	storage StorageService,
	parser DocumentParserService,
	engine EngineClient,
	normalizer MatchNormalizer,
) AnalyzerService {
	return &analyzerService{
		docRepo:      docRepo,
		analysisRepo: analysisRepo,
		storage:      storage,
		parser:       parser,
		engine:       engine,
		normalizer:   normalizer,
	}
}

func (a *analyzerService) Submit(ctx context.Context, userID uuid.UUID, filenameHint string, file io.Reader, jobDescription string) (*models.Analysis, error) {
	if file == nil {
		return nil, models.ErrNoFileProvided
	}

	buffered := bufio.NewReader(file)
	if _, err := buffered.Peek(1); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, models.ErrNoFileProvided
		}
		return nil, fmt.Errorf("%w: failed to read upload: %v", models.ErrStorageWriteFailed, err)
	}

	storedName, filePath, written, err := a.storage.SaveFile(filenameHint, buffered)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStorageWriteFailed, err)
	}
	log.Printf("📄 Stored document %s (%d bytes)", storedName, written)

	doc := &models.Document{
		ID:               uuid.New(),
		UserID:           userID,
		OriginalFileName: filenameHint,
		Filename:         storedName,
		FilePath:         filePath,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	// Best-effort preview; the engine extracts text on its own, so a parse
	// failure here must not block the pipeline.
	if content, err := a.parser.ExtractText(filePath); err != nil {
		log.Printf("⚠️  Failed to extract text preview from %s: %v", storedName, err)
	} else {
		doc.PageCount = content.PageCount
		doc.TextSnippet = truncate(content.Text, snippetMaxLen)
	}

	if err := a.docRepo.Create(doc); err != nil {
		if cleanupErr := a.storage.DeleteFile(storedName); cleanupErr != nil {
			log.Printf("⚠️  Failed to clean up %s after document insert failure: %v", storedName, cleanupErr)
		}
		return nil, fmt.Errorf("%w: %v", models.ErrStorageWriteFailed, err)
	}

	// Detached from the caller: a client disconnect must not cancel an engine
	// call that will be billed anyway, and a completed analysis is persisted
	// even if nobody is waiting for the response.
	engineCtx := context.WithoutCancel(ctx)

	log.Printf("🤖 Requesting analysis for document %s", doc.ID)
	raw, rawJSON, err := a.engine.Analyze(engineCtx, filePath, doc.OriginalFileName, jobDescription)
	if err != nil {
		return nil, err
	}

	normalized := a.normalizer.Normalize(raw, jobDescription)

	analysis := &models.Analysis{
		ID:                uuid.New(),
		UserID:            userID,
		DocumentID:        doc.ID,
		JobDescription:    jobDescription,
		RawResult:         []byte(rawJSON),
		MatchScore:        normalized.MatchScore,
		SkillsImplemented: datatypes.NewJSONSlice(normalized.SkillsImplemented),
		SkillsToAcquire:   datatypes.NewJSONSlice(normalized.SkillsToAcquire),
		ImplementedCount:  normalized.Audit.ImplementedCount,
		ToAcquireCount:    normalized.Audit.ToAcquireCount,
		TotalSkills:       normalized.Audit.Total,
		Formula:           normalized.Audit.Formula,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}

	if err := a.analysisRepo.Create(analysis); err != nil {
		return nil, fmt.Errorf("failed to save analysis: %w", err)
	}

	log.Printf("✅ Analysis %s completed with score %.1f", analysis.ID, analysis.MatchScore)

	analysis.Document = *doc
	return analysis, nil
}

// truncate cuts s to at most max bytes without splitting a multi-byte rune;
// the snippet ends up in a text column that only accepts valid UTF-8.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}
