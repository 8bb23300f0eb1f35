package main

import (
	"net/http"
	"testing"

	"bilictl/internal/api"
)

func TestSubscribeFavoriteRefusesConfiguredSource(t *testing.T) {
	env := setupCLITestEnv(t)

	env.handleData("GET /api/me/favorites", api.FollowedFavoritesResponse{
		Favorites: []api.FollowedFavorite{{FID: 10, Title: "默认收藏夹", MediaCount: 3}},
	})
	env.handleData("GET /api/video-sources", api.SourceCatalog{
		Favorites: []api.SourceEntry{{ID: 1, RemoteID: 10, Name: "默认收藏夹", Enabled: true}},
	})
	env.mux.HandleFunc("POST /api/favorites", func(w http.ResponseWriter, r *http.Request) {
		t.Error("subscribe must not be attempted for an already-configured source")
	})

	_, _, err := runCLI(t, env, "subscribe", "favorite", "10", "--path", "/srv/fav")
	if err == nil {
		t.Fatal("expected a refusal")
	}
	requireContains(t, err.Error(), "already subscribed as source 1")
}

func TestSubscribeFavoriteSubmitsRequest(t *testing.T) {
	env := setupCLITestEnv(t)

	env.handleData("GET /api/me/favorites", api.FollowedFavoritesResponse{
		Favorites: []api.FollowedFavorite{{FID: 10, Title: "音乐", MediaCount: 3}},
	})
	env.handleData("GET /api/video-sources", api.SourceCatalog{})

	var gotReq api.InsertFavoriteRequest
	env.mux.HandleFunc("POST /api/favorites", func(w http.ResponseWriter, r *http.Request) {
		decodeBody(t, r, &gotReq)
		writeEnvelope(w, map[string]any{})
	})

	stdout, _, err := runCLI(t, env, "subscribe", "favorite", "10", "--path", "/srv/fav")
	if err != nil {
		t.Fatalf("subscribe favorite: %v", err)
	}
	requireContains(t, stdout, "Subscribed favorite 10")
	if gotReq.FID != 10 || gotReq.Path != "/srv/fav" {
		t.Fatalf("unexpected request: %+v", gotReq)
	}
}

func TestSubscribeFavoriteRequiresFollowedEntry(t *testing.T) {
	env := setupCLITestEnv(t)

	env.handleData("GET /api/me/favorites", api.FollowedFavoritesResponse{})

	_, _, err := runCLI(t, env, "subscribe", "favorite", "10", "--path", "/srv/fav")
	if err == nil {
		t.Fatal("expected an error for an unfollowed favorite")
	}
	requireContains(t, err.Error(), "not in the followed list")
}

func TestSubscribeCollectionValidatesType(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, env, "subscribe", "collection", "3", "4", "--path", "/srv/c", "--type", "album")
	if err == nil {
		t.Fatal("expected an error for an unknown collection type")
	}
	requireContains(t, err.Error(), "invalid collection type")
}

func TestFollowsFavoritesAnnotatesResolution(t *testing.T) {
	env := setupCLITestEnv(t)

	env.handleData("GET /api/me/favorites", api.FollowedFavoritesResponse{
		Favorites: []api.FollowedFavorite{
			{FID: 10, Title: "已订阅", MediaCount: 3},
			{FID: 11, Title: "未订阅", MediaCount: 9},
		},
	})
	env.handleData("GET /api/video-sources", api.SourceCatalog{
		Favorites: []api.SourceEntry{{ID: 7, RemoteID: 10, Name: "已订阅", Enabled: true}},
	})

	stdout, _, err := runCLI(t, env, "follows", "favorites")
	if err != nil {
		t.Fatalf("follows favorites: %v", err)
	}
	requireContains(t, stdout, "source 7")
	requireContains(t, stdout, "not configured")
}

func TestSourcesListGroupsByType(t *testing.T) {
	env := setupCLITestEnv(t)

	env.handleData("GET /api/video-sources", api.SourceCatalog{
		Favorites:   []api.SourceEntry{{ID: 1, RemoteID: 10, Name: "收藏", Path: "/srv/fav", Enabled: true}},
		Collections: []api.SourceEntry{{ID: 2, RemoteID: 20, Name: "合集", Path: "/srv/col", Enabled: false}},
	})

	stdout, _, err := runCLI(t, env, "sources", "list")
	if err != nil {
		t.Fatalf("sources list: %v", err)
	}
	requireContains(t, stdout, "== favorite ==")
	requireContains(t, stdout, "== collection ==")
	requireContains(t, stdout, "收藏")
	requireContains(t, stdout, "/srv/col")
}
