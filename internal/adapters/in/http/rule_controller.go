package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agendavel/agenda-rules-api/internal/config"
	"github.com/agendavel/agenda-rules-api/internal/core/domain"
	"github.com/agendavel/agenda-rules-api/internal/core/ports/in"
	"github.com/agendavel/agenda-rules-api/internal/core/ports/out"
	"github.com/agendavel/agenda-rules-api/internal/utils"
)

type RuleController struct {
	useCase in.RuleUseCase
	cfg     *config.Config
	logger  out.LoggerPort
}

func NewRuleController(useCase in.RuleUseCase, cfg *config.Config, logger out.LoggerPort) *RuleController {
	return &RuleController{
		useCase: useCase,
		cfg:     cfg,
		logger:  logger.WithModule("RuleController"),
	}
}

func (c *RuleController) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	{
		api.GET("/test", c.test)
		api.GET("/rules", c.getRules)
		api.GET("/available", c.getAvailableDayIntervals)
		api.POST("/create/specificDay", c.createSpecificDayRule)
		api.POST("/create/daily", c.createDailyRule)
		api.POST("/create/weekly", c.createWeeklyRule)
		api.DELETE("/rule", c.deleteRule)
	}
}

type errorResponse struct {
	Status   string `json:"status"`
	About    string `json:"about"`
	Solution string `json:"solution"`
}

func newErrorResponse(about, solution string) errorResponse {
	return errorResponse{Status: "ERROR", About: about, Solution: solution}
}

func statusForKind(kind domain.ErrorKind) int {
	switch kind {
	case domain.ErrorKindValidation:
		return http.StatusNotAcceptable
	case domain.ErrorKindConflict:
		return http.StatusConflict
	case domain.ErrorKindNotFound:
		return http.StatusNotFound
	case domain.ErrorKindNotAllowed:
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}

func (c *RuleController) renderError(ctx *gin.Context, err error) {
	domainErr := domain.AsError(err)
	ctx.JSON(statusForKind(domainErr.Kind), newErrorResponse(domainErr.About, domainErr.Solution))
}

// formOrQuery reads a flat string field from the form body, falling back
// to the query string so GET requests can carry the same keys.
func formOrQuery(ctx *gin.Context, key string) string {
	if value := ctx.PostForm(key); value != "" {
		return value
	}
	return ctx.Query(key)
}

func (c *RuleController) test(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status": "API ENDPOINT WORKING!",
		"about":  "Appointment availability rules API",
	})
}

func (c *RuleController) getRules(ctx *gin.Context) {
	summary, err := c.useCase.SummarizeRules(ctx.Request.Context())
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, summary)
}

func (c *RuleController) getAvailableDayIntervals(ctx *gin.Context) {
	dayStart := formOrQuery(ctx, "day_start")
	dayEnd := formOrQuery(ctx, "day_end")

	if dayStart == "" || dayEnd == "" {
		ctx.JSON(http.StatusBadRequest, newErrorResponse(
			"Malformed request!",
			"your body x-www-form-urlencoded must contain keys: 'day_start' AND 'day_end'",
		))
		return
	}

	if !utils.DateFormatIsValid(dayStart) {
		ctx.JSON(http.StatusNotAcceptable, newErrorResponse(
			"Invalid date format!",
			"day_start must by like dd-mm-yyyy",
		))
		return
	}

	if !utils.DateFormatIsValid(dayEnd) {
		ctx.JSON(http.StatusNotAcceptable, newErrorResponse(
			"Invalid date format!",
			"day_end must by like dd-mm-yyyy",
		))
		return
	}

	days, err := c.useCase.AvailableIntervals(ctx.Request.Context(), dayStart, dayEnd)
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	if len(days) == 0 {
		ctx.JSON(http.StatusOK, gin.H{
			"status":   "UNAVAILABLE",
			"about":    "Unavailable interval!",
			"solution": "There's no intervals available from dates: '" + dayStart + "' to '" + dayEnd + "'",
		})
		return
	}

	ctx.JSON(http.StatusOK, days)
}

func (c *RuleController) createSpecificDayRule(ctx *gin.Context) {
	day := ctx.PostForm("day")
	intervalStart := ctx.PostForm("interval_start")
	intervalEnd := ctx.PostForm("interval_end")

	if day == "" || intervalStart == "" || intervalEnd == "" {
		ctx.JSON(http.StatusBadRequest, newErrorResponse(
			"Malformed request!",
			"your body x-www-form-urlencoded must contain keys: 'day', 'interval_start' AND 'interval_end'",
		))
		return
	}

	if !utils.DateFormatIsValid(day) {
		ctx.JSON(http.StatusNotAcceptable, newErrorResponse(
			"Invalid date format!",
			"day must by like dd-mm-yyyy",
		))
		return
	}

	if !c.validTimeFormat(ctx, intervalStart, intervalEnd) {
		return
	}

	rule, err := c.useCase.StoreSpecificDayRule(ctx.Request.Context(), day, intervalStart, intervalEnd)
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, rule)
}

func (c *RuleController) createDailyRule(ctx *gin.Context) {
	intervalStart := ctx.PostForm("interval_start")
	intervalEnd := ctx.PostForm("interval_end")

	if intervalStart == "" || intervalEnd == "" {
		ctx.JSON(http.StatusBadRequest, newErrorResponse(
			"Malformed request!",
			"your body x-www-form-urlencoded must contain keys: 'interval_start' AND 'interval_end'",
		))
		return
	}

	if !c.validTimeFormat(ctx, intervalStart, intervalEnd) {
		return
	}

	interval, err := c.useCase.StoreDailyRule(ctx.Request.Context(), intervalStart, intervalEnd)
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, interval)
}

func (c *RuleController) createWeeklyRule(ctx *gin.Context) {
	dayOfTheWeekName := ctx.PostForm("day_of_the_week_name")
	intervalStart := ctx.PostForm("interval_start")
	intervalEnd := ctx.PostForm("interval_end")

	if dayOfTheWeekName == "" || intervalStart == "" || intervalEnd == "" {
		ctx.JSON(http.StatusBadRequest, newErrorResponse(
			"Malformed request!",
			"your body x-www-form-urlencoded must contain keys: 'day_of_the_week_name', 'interval_start' AND 'interval_end'",
		))
		return
	}

	if !domain.IsBusinessWeekday(dayOfTheWeekName) {
		ctx.JSON(http.StatusNotAcceptable, newErrorResponse(
			"Invalid day_of_the_week name!",
			"day_of_the_week_name can be: segundas, tercas, quartas, quintas or sextas",
		))
		return
	}

	if !c.validTimeFormat(ctx, intervalStart, intervalEnd) {
		return
	}

	bucket, err := c.useCase.StoreWeeklyRule(ctx.Request.Context(), dayOfTheWeekName, intervalStart, intervalEnd)
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, bucket)
}

func (c *RuleController) deleteRule(ctx *gin.Context) {
	ruleType := ctx.PostForm("rule_type")
	ruleID := ctx.PostForm("rule_id")
	intervalID := ctx.PostForm("interval_id")

	if ruleType == "" || ruleID == "" {
		ctx.JSON(http.StatusBadRequest, newErrorResponse(
			"Malformed request!",
			"your body x-www-form-urlencoded must contain keys: 'rule_type' AND 'rule_id' at least",
		))
		return
	}

	if !domain.IsValidRuleType(ruleType) {
		ctx.JSON(http.StatusNotAcceptable, newErrorResponse(
			"Invalid 'rule_type' name!",
			"rule_type can be: 'specific_days', 'daily' or 'weekly'",
		))
		return
	}

	result, err := c.useCase.DeleteRule(ctx.Request.Context(), ruleType, ruleID, intervalID)
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

func (c *RuleController) validTimeFormat(ctx *gin.Context, intervalStart, intervalEnd string) bool {
	if !utils.TimeFormatIsValid(intervalStart) {
		ctx.JSON(http.StatusNotAcceptable, newErrorResponse(
			"Invalid time format!",
			"interval_start must by like HH:MM (like 14:30)",
		))
		return false
	}

	if !utils.TimeFormatIsValid(intervalEnd) {
		ctx.JSON(http.StatusNotAcceptable, newErrorResponse(
			"Invalid time format!",
			"interval_end must by like HH:MM (like 15:30)",
		))
		return false
	}

	return true
}
