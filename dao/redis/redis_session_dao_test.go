package redis

import (
	"context"
	"testing"

	"astrocal-server/db"
	"astrocal-server/models"
)

func TestRedisSessionDAO_SetGet_Success(t *testing.T) {
	// Setup
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisSessionDAO(mockClient)

	date := models.SelectedDate{Year: 2024, Month: 3, Day: 15}

	// Act
	if err := dao.SetSelectedDate("sess-abc", date); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	got, err := dao.GetSelectedDate("sess-abc")

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got == nil {
		t.Fatal("Expected a stored date, got nil")
	}
	if *got != date {
		t.Errorf("Expected %v, got %v", date, *got)
	}
}

func TestRedisSessionDAO_Get_NoState(t *testing.T) {
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisSessionDAO(mockClient)

	got, err := dao.GetSelectedDate("unknown-session")
	if err != nil {
		t.Fatalf("Expected no error for missing session, got %v", err)
	}
	if got != nil {
		t.Errorf("Expected nil for missing session, got %v", got)
	}
}

func TestRedisSessionDAO_SessionsAreIsolated(t *testing.T) {
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisSessionDAO(mockClient)

	_ = dao.SetSelectedDate("sess-a", models.SelectedDate{Year: 2024, Month: 3, Day: 15})
	_ = dao.SetSelectedDate("sess-b", models.SelectedDate{Year: 2025, Month: 4, Day: 5})

	a, _ := dao.GetSelectedDate("sess-a")
	b, _ := dao.GetSelectedDate("sess-b")

	if a == nil || b == nil {
		t.Fatal("Expected both sessions to have stored dates")
	}
	if a.Day != 15 || b.Day != 5 {
		t.Errorf("Sessions leaked into each other: %v / %v", a, b)
	}
}

func TestRedisSessionDAO_Delete(t *testing.T) {
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisSessionDAO(mockClient)

	_ = dao.SetSelectedDate("sess-abc", models.SelectedDate{Year: 2024, Month: 3, Day: 15})
	if err := dao.DeleteSelectedDate("sess-abc"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	got, err := dao.GetSelectedDate("sess-abc")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got != nil {
		t.Errorf("Expected nil after delete, got %v", got)
	}
}
