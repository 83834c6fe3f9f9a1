package crmfill

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/siherrmann/crmfill/core/pipeline"
	"github.com/siherrmann/crmfill/database"
	"github.com/siherrmann/crmfill/helper"
	"github.com/siherrmann/crmfill/model"
	loadSql "github.com/siherrmann/crmfill/sql"
)

// CRMFill turns free-form meeting transcripts into structured CRM records.
type CRMFill struct {
	DB       *helper.Database
	Registry database.Registry
	Pipeline *pipeline.Pipeline // Recognizer, sentence splitter and date resolver
	Config   *model.ExtractionConfig
	// Logging
	log *slog.Logger
}

// New creates a CRMFill instance with the given registry and pipeline.
// Useful for running without Postgres (see database.NewMemoryRegistry).
func New(registry database.Registry, pipe *pipeline.Pipeline) *CRMFill {
	opts := helper.PrettyHandlerOptions{
		SlogOpts: slog.HandlerOptions{
			Level: slog.LevelInfo,
		},
	}
	logger := slog.New(helper.NewPrettyHandler(os.Stdout, opts))

	return &CRMFill{
		Registry: registry,
		Pipeline: pipe,
		Config:   model.DefaultExtractionConfig(),
		log:      logger,
	}
}

// NewWithDatabase creates a CRMFill instance backed by a Postgres duplicate
// registry. The registry table and SQL functions are created on first use.
func NewWithDatabase(config *helper.DatabaseConfiguration) (*CRMFill, error) {
	// Logger
	opts := helper.PrettyHandlerOptions{
		SlogOpts: slog.HandlerOptions{
			Level: slog.LevelInfo,
		},
	}
	logger := slog.New(helper.NewPrettyHandler(os.Stdout, opts))

	// Initialize database
	db := helper.NewDatabase("crmfill", config, logger)
	err := loadSql.Init(db.Instance)
	if err != nil {
		return nil, helper.NewError("initialize database extensions", err)
	}

	// force=false to not reload if functions already exist
	registry, err := database.NewRegistryDBHandler(db, false)
	if err != nil {
		return nil, helper.NewError("create registry handler", err)
	}

	return &CRMFill{
		DB:       db,
		Registry: registry,
		Config:   model.DefaultExtractionConfig(),
		log:      logger,
	}, nil
}

// Close closes the database connection
func (c *CRMFill) Close() error {
	if c.DB != nil && c.DB.Instance != nil {
		return c.DB.Instance.Close()
	}
	return nil
}

// SetPipeline sets the extraction pipeline
func (c *CRMFill) SetPipeline(pipe *pipeline.Pipeline) {
	c.Pipeline = pipe
}

// UseDefaultPipeline sets up the default extraction pipeline.
// This uses DefaultRecognizer with the distilbert-NER model,
// DefaultSentenceSplitter and DefaultDateResolver.
func (c *CRMFill) UseDefaultPipeline() error {
	recognizer, err := pipeline.DefaultRecognizer()
	if err != nil {
		return helper.NewError("create default recognizer", err)
	}

	c.Pipeline = pipeline.NewPipeline(recognizer, pipeline.DefaultSentenceSplitter(), pipeline.DefaultDateResolver())
	return nil
}

// Extract turns a meeting transcript into a structured CRM record. It never
// fails: every stage degrades to nil or empty fields when its signal is
// missing, and registry errors degrade to false duplicate flags.
func (c *CRMFill) Extract(ctx context.Context, text string, source string) *model.ExtractionRecord {
	config := c.Config
	if config == nil {
		config = model.DefaultExtractionConfig()
	}

	var spans []model.EntitySpan
	if c.Pipeline != nil && c.Pipeline.Recognizer != nil {
		recognized, err := c.Pipeline.Recognizer(text)
		if err != nil {
			c.log.Warn("Entity recognition failed, continuing without spans", slog.String("error", err.Error()))
		} else {
			spans = recognized
		}
	}
	spans = model.CollapseSpans(spans)

	persons := model.FilterSpans(spans, model.LabelPerson)
	orgs := model.FilterSpans(spans, model.LabelOrg)
	places := model.FilterSpans(spans, model.LabelGPE, model.LabelLoc)
	moneys := model.FilterSpans(spans, model.LabelMoney)

	// Contact
	contact := model.Contact{
		Title: pipeline.DetectTitle(text),
		Email: pipeline.DetectEmail(text),
		Phone: pipeline.DetectPhone(text),
	}
	if len(persons) > 0 {
		contact.Name = &persons[0]
	}

	// Company: first organization, falling back to the first place
	company := model.Company{}
	if len(orgs) > 0 {
		company.Name = &orgs[0]
	} else if len(places) > 0 {
		company.Name = &places[0]
	}

	// Deal value: first MONEY span, with a pattern fallback over the full
	// text filling only the fields the span left empty
	parser := pipeline.MoneyParser{CroreMultiplier: config.CroreMultiplier}
	var money model.MonetaryValue
	if len(moneys) > 0 {
		money = parser.Parse(moneys[0])
	}
	if money.Amount == nil {
		if match := pipeline.FallbackMoneyPattern.FindString(text); match != "" {
			fallback := parser.Parse(match)
			money.Amount = fallback.Amount
			if money.Currency == nil {
				money.Currency = fallback.Currency
			}
		}
	}

	resolve := pipeline.ResolveDateFunc(nil)
	if c.Pipeline != nil {
		resolve = c.Pipeline.DateResolver
	}

	deal := model.Deal{
		Name:      "Opportunity",
		Value:     money.Amount,
		Currency:  money.Currency,
		Stage:     pipeline.DetectStage(text),
		CloseDate: pipeline.FirstResolvedDate(spans, resolve),
	}
	if company.Name != nil {
		deal.Name = fmt.Sprintf("%s Deal", *company.Name)
	}

	// Sentence level heuristics
	split := pipeline.DefaultSentenceSplitter()
	if c.Pipeline != nil && c.Pipeline.Sentences != nil {
		split = c.Pipeline.Sentences
	}
	sentences := split(text)

	painPoints := pipeline.DetectPainPoints(sentences)
	nextActions := pipeline.DetectNextActions(sentences, resolve, config.ActionOwner)
	competitors := pipeline.DetectCompetitors(text)

	// Duplicate flags reflect the state before this extraction is registered
	var duplicates model.DuplicateChecks
	if c.Registry != nil {
		contactExists, companyExists, err := c.Registry.CheckAndRegister(ctx, contact.Email, company.Name)
		if err != nil {
			c.log.Warn("Duplicate check failed, reporting no duplicates", slog.String("error", err.Error()))
		} else {
			duplicates = model.DuplicateChecks{
				ContactExists: contactExists,
				CompanyExists: companyExists,
			}
		}
	}

	record := &model.ExtractionRecord{
		Contact:         contact,
		Company:         company,
		Deal:            deal,
		PainPoints:      painPoints,
		Competitors:     competitors,
		NextActions:     nextActions,
		Notes:           truncateRunes(text, config.NotesLimit),
		Confidence:      config.Confidence,
		DuplicateChecks: duplicates,
		CRMPush: model.CRMPush{
			Status:    "mocked",
			ContactID: fmt.Sprintf("c-%s", uuid.New().String()),
			CompanyID: fmt.Sprintf("co-%s", uuid.New().String()),
		},
	}

	c.log.Info("Extracted CRM record",
		slog.String("source", source),
		slog.Int("num_spans", len(spans)),
		slog.Int("num_pain_points", len(painPoints)),
		slog.Int("num_next_actions", len(nextActions)),
	)

	return record
}

// truncateRunes limits text to n runes so multi-byte characters are never cut
// in half.
func truncateRunes(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n])
}
