package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/katalvlaran/integrix/engine"
	"github.com/katalvlaran/integrix/plotdata"
	"github.com/katalvlaran/integrix/render"
)

func newMCPServer(h *engine.Handler, logger *zap.Logger) *server.MCPServer {
	s := server.NewMCPServer(serverName, serverVersion)

	s.AddTool(mcp.NewTool(
		"integrate",
		mcp.WithDescription("Numerically and symbolically integrate a function of x over [lower, upper]; returns the value, an error estimate, the antiderivative when one exists, and plot series"),
		mcp.WithString("expression",
			mcp.Description("The integrand as a function of x (e.g. 'sin(x**2) + 1', 'exp(-x**2)', 'x*log(x)')"),
			mcp.Required(),
		),
		mcp.WithNumber("lower",
			mcp.Description("Lower integration limit"),
			mcp.Required(),
		),
		mcp.WithNumber("upper",
			mcp.Description("Upper integration limit; must be greater than lower"),
			mcp.Required(),
		),
		mcp.WithBoolean("render_plot",
			mcp.Description("Include an SVG rendering of the curve and shaded area"),
		),
	), handleIntegrate(h, logger))

	return s
}

// toolPayload is the machine-readable half of the tool result.
type toolPayload struct {
	Expression          string   `json:"expression"`
	Lower               float64  `json:"lower"`
	Upper               float64  `json:"upper"`
	Value               float64  `json:"value"`
	ErrorEstimate       float64  `json:"error_estimate"`
	Antiderivative      string   `json:"antiderivative,omitempty"`
	AntiderivativeLaTeX string   `json:"antiderivative_latex,omitempty"`
	Strategy            string   `json:"strategy,omitempty"`
	Warnings            []string `json:"warnings,omitempty"`
	PlotSVG             string   `json:"plot_svg,omitempty"`
}

func handleIntegrate(h *engine.Handler, logger *zap.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		expression, err := request.RequireString("expression")
		if err != nil {
			return mcp.NewToolResultError("expression parameter is required"), nil
		}
		lower, err := request.RequireFloat("lower")
		if err != nil {
			return mcp.NewToolResultError("lower parameter must be a number"), nil
		}
		upper, err := request.RequireFloat("upper")
		if err != nil {
			return mcp.NewToolResultError("upper parameter must be a number"), nil
		}
		renderPlot := request.GetBool("render_plot", false)

		start := time.Now()
		resp, err := h.Do(ctx, engine.Request{
			ExpressionText: expression,
			LowerLimit:     lower,
			UpperLimit:     upper,
		})
		observeRequest(err, time.Since(start))
		if err != nil {
			var f *engine.Failure
			if errors.As(err, &f) {
				return mcp.NewToolResultError(f.Message), nil
			}

			return mcp.NewToolResultError(err.Error()), nil
		}

		payload := toolPayload{
			Expression:          expression,
			Lower:               lower,
			Upper:               upper,
			Value:               resp.DefiniteIntegral,
			ErrorEstimate:       resp.ErrorEstimate,
			Antiderivative:      resp.Antiderivative,
			AntiderivativeLaTeX: resp.AntiderivativeLaTeX,
			Strategy:            resp.SymbolicStrategy,
			Warnings:            resp.Warnings,
		}
		if renderPlot {
			if svg, rerr := renderSVG(expression, resp); rerr != nil {
				logger.Warn("plot rendering failed", zap.Error(rerr))
			} else {
				payload.PlotSVG = svg
			}
		}
		body, merr := json.Marshal(payload)
		if merr != nil {
			return mcp.NewToolResultError("failed to encode result"), nil
		}

		return mcp.NewToolResultText(summarize(payload) + "\n" + string(body)), nil
	}
}

// summarize renders the human half of the result: value to six decimal
// places, estimate in scientific notation.
func summarize(p toolPayload) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Integral of %s from %g to %g = %.6f (error estimate %.2e)",
		p.Expression, p.Lower, p.Upper, p.Value, p.ErrorEstimate)
	if p.Antiderivative != "" {
		fmt.Fprintf(&b, "\nAntiderivative: %s + C  [%s]", p.Antiderivative, p.Strategy)
	}
	for _, w := range p.Warnings {
		fmt.Fprintf(&b, "\nWarning: %s", w)
	}

	return b.String()
}

func renderSVG(expression string, resp engine.Response) (string, error) {
	opts := render.DefaultOptions()
	opts.Title = "Integration of " + expression
	opts.Legend = "f(x) = " + expression
	fig, err := render.New(plotdata.PlotData{Curve: resp.Curve, Fill: resp.Fill}, opts)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err = fig.WriteSVG(&buf); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func serveStdio(s *server.MCPServer, logger *zap.Logger) {
	if err := server.ServeStdio(s); err != nil {
		logger.Fatal("stdio server", zap.Error(err))
	}
}

func serveHTTP(s *server.MCPServer, logger *zap.Logger) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	limiter := newMapLimiter(toolRPS, toolBurst, 10*time.Minute)
	mux := http.NewServeMux()
	mux.Handle("/mcp", withRateLimit(limiter, server.NewStreamableHTTPServer(s)))
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	logger.Info("http listening",
		zap.String("port", port),
		zap.String("mcp", "/mcp"),
		zap.String("metrics", "/metrics"),
	)
	if err := http.ListenAndServe(":"+port, mux); err != nil {
		logger.Fatal("http server", zap.Error(err))
	}
}
