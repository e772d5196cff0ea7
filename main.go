package main

import (
	"context"
	"errors"
	"html/template"
	"log"
	"math"
	"net/http"
	"os"
	"strconv"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/timeline"
)

var ErrInvalidHeight = errors.New("height must be a finite, non-negative number")

// site is everything the handlers need. records and config are read-only
// after startup.
type site struct {
	records []timeline.Record
	config  timeline.Config
	heights *heightStore
	now     func() time.Time
}

type timelineResponse struct {
	Now           string          `json:"now"`
	Layout        timeline.Layout `json:"layout"`
	BottomPadding int             `json:"bottomPadding"`
}

type detailHeightRequest struct {
	ID     string   `json:"id" binding:"required"`
	Height *float64 `json:"height" binding:"required"`
}

type detailHeightResponse struct {
	ID            string `json:"id"`
	Height        int    `json:"height"`
	Applied       bool   `json:"applied"`
	BottomPadding int    `json:"bottomPadding"`
}

type experiencesPage struct {
	Intro         string
	Desktop       timeline.Layout
	Mobile        timeline.Layout
	BottomPadding int
}

// cardView is what the "card" template renders.
type cardView struct {
	Record   timeline.Record
	Period   string
	Compact  bool
	Initials string
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"card": func(r timeline.Record, period string, compact bool) cardView {
			return cardView{Record: r, Period: period, Compact: compact, Initials: timeline.Initials(r.Company)}
		},
	}
}

func main() {
	records, err := content.LoadExperiences(os.Getenv("CONTENT_PATH"))
	if err != nil {
		log.Fatal("Failed to load experiences:", err)
	}
	config, err := timeline.LoadConfig(os.Getenv("TIMELINE_CONFIG"))
	if err != nil {
		log.Fatal("Failed to load timeline config:", err)
	}

	db, err := openDatabase(os.Getenv("DATABASE_PATH"))
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer db.Close()

	heights, err := newHeightStore(db)
	if err != nil {
		log.Fatal("Failed to initialize detail heights:", err)
	}

	ttl := 24 * time.Hour
	if hours, err := strconv.Atoi(os.Getenv("SESSION_TTL_HOURS")); err == nil && hours > 0 {
		ttl = time.Duration(hours) * time.Hour
	}
	go heights.runCleanup(context.Background(), ttl, time.Hour)

	s := &site{records: records, config: config, heights: heights, now: time.Now}
	log.Printf("Loaded %d experiences", len(records))

	r := gin.Default()
	r.SetFuncMap(templateFuncs())
	r.LoadHTMLGlob("templates/*")

	r.Static("/images", "./images")
	r.Static("/static", "./static")

	setupRoutes(r, s)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}

func setupRoutes(r *gin.Engine, s *site) {
	// Home page route
	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", gin.H{
			"aboutMeContent":      content.AboutMe,
			"projectOneContent":   content.ProjectOne,
			"projectTwoContent":   content.ProjectTwo,
			"projectThreeContent": content.ProjectThree,
			"projectFourContent":  content.ProjectFour,
		})
	})

	// Prometheus metrics
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	timelineGroup := r.Group("/")
	timelineGroup.Use(sessionMiddleware())

	// Experience timeline page, both layouts; CSS picks one per viewport
	timelineGroup.GET("/experiences", func(c *gin.Context) {
		now := s.now()
		heights, err := s.heights.load(c.Request.Context(), sessionID(c))
		if err != nil {
			log.Printf("Error loading detail heights: %v", err)
			heights = nil
		}

		c.HTML(http.StatusOK, "experiences.html", experiencesPage{
			Intro:         content.ExperienceIntro,
			Desktop:       s.layout(now, timeline.Desktop),
			Mobile:        s.layout(now, timeline.Mobile),
			BottomPadding: timeline.BottomPadding(heights, s.config),
		})
	})

	// Desktop layout as a standalone SVG
	timelineGroup.GET("/experiences.svg", func(c *gin.Context) {
		now, err := s.resolveNow(c.Query("now"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		svg := timeline.RenderSVG(s.layout(now, timeline.Desktop), s.config)
		c.Data(http.StatusOK, "image/svg+xml; charset=utf-8", []byte(svg))
	})

	// Layout JSON for client-side rendering
	timelineGroup.GET("/api/timeline", func(c *gin.Context) {
		view, err := timeline.ParseView(c.Query("view"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		now, err := s.resolveNow(c.Query("now"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		heights, err := s.heights.load(c.Request.Context(), sessionID(c))
		if err != nil {
			log.Printf("Error loading detail heights: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load detail heights"})
			return
		}

		c.JSON(http.StatusOK, timelineResponse{
			Now:           now.Format("2006-01"),
			Layout:        s.layout(now, view),
			BottomPadding: timeline.BottomPadding(heights, s.config),
		})
	})

	// Measured detail panel height reported by a card
	timelineGroup.POST("/api/timeline/details-height", func(c *gin.Context) {
		var req detailHeightRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if math.IsNaN(*req.Height) || math.IsInf(*req.Height, 0) || *req.Height < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": ErrInvalidHeight.Error()})
			return
		}
		if !s.hasRecord(req.ID) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Experience not found"})
			return
		}

		heights, applied, err := s.heights.report(c.Request.Context(), sessionID(c), req.ID, *req.Height)
		if err != nil {
			log.Printf("Error recording detail height for %s: %v", req.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record height"})
			return
		}

		outcome := "ignored"
		if applied {
			outcome = "applied"
		}
		detailHeightReports.WithLabelValues(outcome).Inc()

		c.JSON(http.StatusOK, detailHeightResponse{
			ID:            req.ID,
			Height:        heights[req.ID],
			Applied:       applied,
			BottomPadding: timeline.BottomPadding(heights, s.config),
		})
	})
}

func (s *site) layout(now time.Time, view timeline.View) timeline.Layout {
	layoutComputations.WithLabelValues(string(view)).Inc()
	return timeline.ComputeLayout(s.records, now, view, s.config)
}

// resolveNow parses an optional "YYYY-MM" override of the current month.
func (s *site) resolveNow(raw string) (time.Time, error) {
	if raw == "" {
		return s.now(), nil
	}
	now, err := time.Parse("2006-01", raw)
	if err != nil {
		return time.Time{}, errors.New("now must be formatted as YYYY-MM")
	}
	return now, nil
}

func (s *site) hasRecord(id string) bool {
	for _, r := range s.records {
		if r.ID == id {
			return true
		}
	}
	return false
}
