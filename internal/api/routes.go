package api

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/satriahrh/lingua/server/domain/entities"
	"github.com/satriahrh/lingua/server/usecase"
)

// SpeechTranslator is the orchestration the HTTP layer delegates to
type SpeechTranslator interface {
	Recognize(ctx context.Context, filename string, audio io.Reader, sourceLanguage string) (string, error)
	Translate(ctx context.Context, text string, targetLanguage string) (string, error)
	Synthesize(ctx context.Context, text string, targetLanguage string) (string, error)
	Languages() []entities.Language
}

// InitRoutes initializes all API routes
func InitRoutes(e *echo.Echo, svc SpeechTranslator, logger *zap.Logger) {
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, WelcomeResponse{
			Message:            "Welcome to the Speech Translator API",
			AvailableEndpoints: []string{"/stt", "/translate", "/tts"},
		})
	})

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"service": "speech-translator",
		})
	})

	e.GET("/languages", func(c echo.Context) error {
		return c.JSON(http.StatusOK, LanguagesResponse{Languages: svc.Languages()})
	})

	e.POST("/stt", func(c echo.Context) error {
		return speechToText(c, svc, logger)
	})

	e.POST("/translate", func(c echo.Context) error {
		return translateText(c, svc, logger)
	})

	e.POST("/tts", func(c echo.Context) error {
		return textToSpeech(c, svc, logger)
	})
}

func speechToText(c echo.Context, svc SpeechTranslator, logger *zap.Logger) error {
	fileHeader, err := c.FormFile("audio")
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "audio file is required"})
	}

	sourceLang := c.FormValue("source_lang")
	if sourceLang == "" {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "source_lang is required"})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return internalError(c, logger, "Failed to read uploaded audio", err)
	}
	defer src.Close()

	text, err := svc.Recognize(c.Request().Context(), fileHeader.Filename, src, sourceLang)
	if errors.Is(err, usecase.ErrUnsupportedLanguage) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unsupported source language."})
	}
	if err != nil {
		return internalError(c, logger, "Speech recognition failed", err)
	}

	logger.Info("Speech recognized",
		zap.String("filename", fileHeader.Filename),
		zap.Int64("size", fileHeader.Size),
		zap.String("source_lang", sourceLang))

	return c.JSON(http.StatusOK, RecognizeResponse{RecognizedText: text})
}

func translateText(c echo.Context, svc SpeechTranslator, logger *zap.Logger) error {
	text, targetLang, missing := textForm(c)
	if missing != "" {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: missing + " is required"})
	}

	translated, err := svc.Translate(c.Request().Context(), text, targetLang)
	if errors.Is(err, usecase.ErrUnsupportedLanguage) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unsupported target language."})
	}
	if err != nil {
		return internalError(c, logger, "Translation failed", err)
	}

	return c.JSON(http.StatusOK, TranslateResponse{TranslatedText: translated})
}

func textToSpeech(c echo.Context, svc SpeechTranslator, logger *zap.Logger) error {
	text, targetLang, missing := textForm(c)
	if missing != "" {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: missing + " is required"})
	}

	path, err := svc.Synthesize(c.Request().Context(), text, targetLang)
	if errors.Is(err, usecase.ErrUnsupportedLanguage) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unsupported target language."})
	}
	if err != nil {
		return internalError(c, logger, "Speech synthesis failed", err)
	}

	return c.JSON(http.StatusOK, SynthesizeResponse{AudioFile: path})
}

// textForm reads the text/target_lang pair shared by /translate and /tts and
// names the first missing field, if any
func textForm(c echo.Context) (text, targetLang, missing string) {
	text = c.FormValue("text")
	if text == "" {
		return "", "", "text"
	}

	targetLang = c.FormValue("target_lang")
	if targetLang == "" {
		return "", "", "target_lang"
	}

	return text, targetLang, ""
}
