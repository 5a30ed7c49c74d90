package bdd

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"
)

func registerLikeToggleSteps(s *godog.ScenarioContext) {
	s.Step(`^a published video "([^"]*)" exists$`, aPublishedVideoExists)
	s.Step(`^member "([^"]*)" already liked video "([^"]*)"$`, memberAlreadyLikedVideo)
	s.Step(`^member "([^"]*)" toggles like on video "([^"]*)"$`, memberTogglesLikeOnVideo)
	s.Step(`^the toggle state should be "([^"]*)"$`, theToggleStateShouldBe)

	// 每個 scenario 重置 in-memory 狀態
	s.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		inMemoryVideos = map[string]bool{}
		inMemoryLikes = map[string]bool{}
		lastToggleState = ""
		return ctx, nil
	})
}

var inMemoryVideos = map[string]bool{}
var inMemoryLikes = map[string]bool{} // key = member:video
var lastToggleState string

func aPublishedVideoExists(videoID string) error {
	inMemoryVideos[videoID] = true
	return nil
}

func memberAlreadyLikedVideo(memberID, videoID string) error {
	inMemoryLikes[memberID+":"+videoID] = true
	return nil
}

func memberTogglesLikeOnVideo(memberID, videoID string) error {
	if !inMemoryVideos[videoID] {
		return fmt.Errorf("video %s does not exist", videoID)
	}
	key := memberID + ":" + videoID
	if inMemoryLikes[key] {
		delete(inMemoryLikes, key)
		lastToggleState = "removed"
	} else {
		inMemoryLikes[key] = true
		lastToggleState = "added"
	}
	return nil
}

func theToggleStateShouldBe(expected string) error {
	if lastToggleState != expected {
		return fmt.Errorf("expected %s, but got %s", expected, lastToggleState)
	}
	return nil
}
