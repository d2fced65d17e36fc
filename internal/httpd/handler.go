package httpd

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cnelsonsic/blueblazer/internal/bar/mix"
	"github.com/cnelsonsic/blueblazer/internal/bar/recipe"
	"github.com/cnelsonsic/blueblazer/internal/bar/shelf"
	"github.com/cnelsonsic/blueblazer/internal/config"
)

// RecipeHandler serves randomly generated drink recipes from a shelf.
type RecipeHandler struct {
	shelf        *shelf.Shelf
	defaultGlass string
	precision    int
	logger       *zap.Logger
}

// NewRecipeHandler creates a handler that mixes drinks from the given shelf.
//
// Precondition: sh and logger must be non-nil; cfg must have passed Validate.
func NewRecipeHandler(cfg config.BarConfig, sh *shelf.Shelf, logger *zap.Logger) *RecipeHandler {
	return &RecipeHandler{
		shelf:        sh,
		defaultGlass: cfg.DefaultGlass,
		precision:    cfg.RatioPrecision,
		logger:       logger,
	}
}

// Recipe handles GET / and writes a plain-text recipe. The optional
// ?glass= query overrides the configured glass ("random" picks one) and
// ?seed= makes the generation reproducible. Every request draws from its
// own randomness source, so concurrent requests never share state.
func (h *RecipeHandler) Recipe(c *gin.Context) {
	var src mix.Source
	if raw, ok := c.GetQuery("seed"); ok {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.String(http.StatusBadRequest, "invalid seed %q: want an integer\n", raw)
			return
		}
		src = mix.NewSeededSource(seed)
	} else {
		src = mix.NewBarSource()
	}

	glass, err := mix.ResolveGlass(c.DefaultQuery("glass", h.defaultGlass), src)
	if err != nil {
		c.String(http.StatusBadRequest, "%s\n", err)
		return
	}

	mixer := mix.NewMixer(h.shelf, src, h.precision, h.logger)
	drink, total, err := mixer.Mix(glass)
	if err != nil {
		h.logger.Error("mixing drink",
			zap.String("glass", glass.Name),
			zap.Error(err),
		)
		c.String(http.StatusInternalServerError, "could not mix a drink\n")
		return
	}

	c.String(http.StatusOK, recipe.Render(drink, glass, total))
}

// Health handles GET /health.
func (h *RecipeHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
