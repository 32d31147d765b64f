package api

import (
	"math/rand"
	"net/http"

	"github.com/gin-gonic/gin"
)

// githubRepos is the fixed pool the picker draws from.
var githubRepos = []string{
	"https://github.com/facebook/react",
	"https://github.com/vuejs/vue",
	"https://github.com/angular/angular",
	"https://github.com/sveltejs/svelte",
	"https://github.com/vercel/next.js",
	"https://github.com/microsoft/TypeScript",
	"https://github.com/nodejs/node",
	"https://github.com/expressjs/express",
	"https://github.com/nestjs/nest",
	"https://github.com/django/django",
}

const (
	repoDescription      = "2. 文辉对项目的summary等更加详细的项目描述"
	midOutputDescription = "1. 小非的中间结果输出"
)

// randIntn is swapped in tests for a seeded source.
var randIntn = rand.Intn

type TaskRequest struct {
	Task string `json:"task"`
}

// POST /api/get_repo
// Every call draws independently; earlier picks are never excluded.
func GetRepoHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TaskRequest
		// The task text is advisory and currently unused, so a missing or
		// malformed body is not an error.
		_ = c.ShouldBindJSON(&req)

		c.JSON(http.StatusOK, gin.H{
			"github_url":  githubRepos[randIntn(len(githubRepos))],
			"description": repoDescription,
		})
	}
}

// POST /api/mid_output
func MidOutputHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TaskRequest
		_ = c.ShouldBindJSON(&req)

		c.JSON(http.StatusOK, gin.H{
			"description": midOutputDescription,
		})
	}
}
