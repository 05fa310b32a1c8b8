// Package seed holds the fixture data the mock backend starts with.
package seed

import (
	"time"

	"github.com/devhub/admin-console/internal/core/domain"
)

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

// Categories returns a fresh copy of the category fixtures.
func Categories() []domain.Category {
	return []domain.Category{
		{ID: 1, Name: "Java", Description: "Java programming language discussions", PostCount: 42, SortOrder: 0, CreatedTime: ts("2025-01-15T08:30:00Z")},
		{ID: 2, Name: "Python", Description: "Python programming language discussions", PostCount: 58, SortOrder: 1, CreatedTime: ts("2025-01-15T08:35:00Z")},
		{ID: 3, Name: "JavaScript", Description: "JavaScript programming language discussions", PostCount: 73, SortOrder: 2, CreatedTime: ts("2025-01-15T08:40:00Z")},
		{ID: 4, Name: "React", Description: "React framework discussions", PostCount: 36, SortOrder: 3, CreatedTime: ts("2025-01-16T10:15:00Z")},
	}
}

// Posts returns a fresh copy of the post fixtures.
func Posts() []domain.Post {
	return []domain.Post{
		{
			ID:           1,
			Title:        "Java concurrency best practices",
			Content:      "Best practices and common pitfalls of concurrent programming in Java...",
			Author:       domain.Author{ID: 101, Username: "javadev"},
			CategoryID:   1,
			CategoryName: "Java",
			Status:       domain.PostPending,
			CreatedAt:    ts("2025-08-01T10:30:00Z"),
			UpdatedAt:    ts("2025-08-01T10:30:00Z"),
		},
		{
			ID:           2,
			Title:        "Getting started with data analysis in Python",
			Content:      "A beginner tutorial covering the basics of NumPy and Pandas...",
			Author:       domain.Author{ID: 102, Username: "pythondata"},
			CategoryID:   2,
			CategoryName: "Python",
			Status:       domain.PostPending,
			CreatedAt:    ts("2025-08-01T14:20:00Z"),
			UpdatedAt:    ts("2025-08-01T14:20:00Z"),
		},
		{
			ID:           3,
			Title:        "The complete guide to React Hooks",
			Content:      "How to use React Hooks well, including useState, useEffect and friends...",
			Author:       domain.Author{ID: 103, Username: "reactmaster"},
			CategoryID:   4,
			CategoryName: "React",
			Status:       domain.PostApproved,
			CreatedAt:    ts("2025-07-30T09:15:00Z"),
			UpdatedAt:    ts("2025-07-30T11:20:00Z"),
		},
		{
			ID:           4,
			Title:        "Asynchronous programming patterns in JavaScript",
			Content:      "Comparing callbacks, Promises and async/await...",
			Author:       domain.Author{ID: 104, Username: "jsguru"},
			CategoryID:   3,
			CategoryName: "JavaScript",
			Status:       domain.PostRejected,
			CreatedAt:    ts("2025-07-29T16:45:00Z"),
			UpdatedAt:    ts("2025-07-30T08:10:00Z"),
		},
		{
			ID:           5,
			Title:        "What is new in Java 17",
			Content:      "Java 17 ships many new features; this post walks through them and how to adopt them...",
			Author:       domain.Author{ID: 105, Username: "javaexpert"},
			CategoryID:   1,
			CategoryName: "Java",
			Status:       domain.PostPending,
			CreatedAt:    ts("2025-08-02T09:15:00Z"),
			UpdatedAt:    ts("2025-08-02T09:15:00Z"),
		},
	}
}

// Accounts returns a fresh copy of the community account fixtures.
func Accounts() []domain.Account {
	return []domain.Account{
		{ID: 101, Username: "javadev", Email: "java@example.com", Status: domain.AccountActive, JoinDate: ts("2025-01-10T08:30:00Z"), PostCount: 12, LastLogin: ts("2025-08-02T15:45:00Z")},
		{ID: 102, Username: "pythondata", Email: "python@example.com", Status: domain.AccountActive, JoinDate: ts("2025-02-15T10:20:00Z"), PostCount: 8, LastLogin: ts("2025-08-01T09:30:00Z")},
		{ID: 103, Username: "reactmaster", Email: "react@example.com", Status: domain.AccountActive, JoinDate: ts("2025-01-20T14:10:00Z"), PostCount: 15, LastLogin: ts("2025-08-03T11:20:00Z")},
		{ID: 104, Username: "jsguru", Email: "js@example.com", Status: domain.AccountBanned, JoinDate: ts("2025-03-05T16:45:00Z"), PostCount: 5, LastLogin: ts("2025-07-28T13:10:00Z")},
		{ID: 105, Username: "javaexpert", Email: "expert@example.com", Status: domain.AccountActive, JoinDate: ts("2025-02-28T09:15:00Z"), PostCount: 20, LastLogin: ts("2025-08-03T10:05:00Z")},
		{ID: 106, Username: "webdev", Email: "web@example.com", Status: domain.AccountActive, JoinDate: ts("2025-04-12T11:30:00Z"), PostCount: 7, LastLogin: ts("2025-08-02T16:25:00Z")},
	}
}
