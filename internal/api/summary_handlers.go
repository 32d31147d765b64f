package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"repo-insight/internal/config"
	"repo-insight/internal/tree"
)

type ProjectSummaryRequest struct {
	ProjectPath string `json:"project_path"`
}

// summaryPrompt asks the model for a numbered two-level outline covering
// features, architecture and an overall evaluation.
const summaryPrompt = `请根据以下项目目录结构，对该项目进行总结。要求：
1. 功能总结：按两级编号（如 1、1.1）分层概括项目的主要功能；
2. 技术架构：描述项目采用的技术栈与整体架构；
3. 使用评价：评价该项目的实用性与适用场景。

项目目录结构：
%s`

// BuildSummaryPrompt embeds a rendered directory tree in the instruction
// template sent to the model.
func BuildSummaryPrompt(structure string) string {
	return fmt.Sprintf(summaryPrompt, structure)
}

// POST /api/project_summary
func ProjectSummaryHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ProjectSummaryRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.ProjectPath == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project path"})
			return
		}
		if _, err := os.Stat(req.ProjectPath); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project path"})
			return
		}

		structure, err := tree.Render(req.ProjectPath)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project path"})
			return
		}

		ollamaURL := cfg.Ollama.URL
		if ollamaURL == "" {
			ollamaURL = config.DefaultOllamaURL
		}
		model := cfg.Ollama.Model
		if model == "" {
			model = config.DefaultOllamaModel
		}

		summary, err := CallOllama(ollamaURL, model, BuildSummaryPrompt(structure))
		if err != nil {
			log.Errorf("Ollama call failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": fmt.Sprintf("Failed to connect to Ollama API: %v", err),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{"summary": summary})
	}
}

// --- Ollama API call logic (exported for testing) ---

// CallOllama posts a non-streaming generate request and returns the model's
// response text verbatim. The client carries no timeout: summarizing a large
// tree on a 32b model can take minutes.
var CallOllama = func(url, model, prompt string) (string, error) {
	var respStruct struct {
		Response string `json:"response"`
	}

	payload := map[string]interface{}{
		"model":  model,
		"prompt": prompt,
		"stream": false,
	}

	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest("POST", url, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	client := http.Client{}
	res, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode > 299 {
		b, _ := io.ReadAll(res.Body)
		return "", fmt.Errorf("status %d: %s", res.StatusCode, string(b))
	}

	if err := json.NewDecoder(res.Body).Decode(&respStruct); err != nil {
		return "", err
	}
	return respStruct.Response, nil
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
