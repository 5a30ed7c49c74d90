package router

import (
	"videotube_service/internal/api/handlers"
	"videotube_service/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// Handlers 聚合所有路由需要的 handler
type Handlers struct {
	Member       *handlers.MemberHandler
	Video        *handlers.VideoHandler
	Comment      *handlers.CommentHandler
	Like         *handlers.LikeHandler
	Subscription *handlers.SubscriptionHandler
	Playlist     *handlers.PlaylistHandler
	Tweet        *handlers.TweetHandler
	Dashboard    *handlers.DashboardHandler

	// Sessions 給 auth middleware 查 redis session 是否仍有效
	Sessions middlewares.SessionChecker
}

// RegisterRoutes 註冊所有路由
// @title VideoTube Service API
// @version 1.0
// @description API documentation for VideoTube Service
// @host localhost:8086
// @BasePath /
func RegisterRoutes(app *fiber.App, h Handlers) {
	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/", handlers.ConnectCheck)
	app.Post("/debug", handlers.DebugLogFlag)

	auth := middlewares.JWTMiddleware(h.Sessions)
	optionalAuth := middlewares.OptionalJWTMiddleware(h.Sessions)

	memberRoutes := app.Group("/member")
	memberRoutes.Post("/register", h.Member.Register)
	memberRoutes.Post("/login", h.Member.Login)
	memberRoutes.Post("/logout", auth, h.Member.Logout)

	videoRoutes := app.Group("/videos")
	videoRoutes.Get("/", h.Video.ListVideos)
	videoRoutes.Post("/", auth, h.Video.UploadVideo)
	// optionalAuth 讓擁有者帶 token 時能看到自己未發布的影片
	videoRoutes.Get("/:videoID", optionalAuth, h.Video.GetVideo)
	videoRoutes.Patch("/:videoID", auth, h.Video.UpdateVideo)
	videoRoutes.Delete("/:videoID", auth, h.Video.DeleteVideo)
	videoRoutes.Patch("/:videoID/publish", auth, h.Video.TogglePublish)

	videoRoutes.Get("/:videoID/comments", h.Comment.ListComments)
	videoRoutes.Post("/:videoID/comments", auth, h.Comment.AddComment)

	commentRoutes := app.Group("/comments", auth)
	commentRoutes.Patch("/:commentID", h.Comment.UpdateComment)
	commentRoutes.Delete("/:commentID", h.Comment.DeleteComment)

	likeRoutes := app.Group("/likes", auth)
	likeRoutes.Get("/videos", h.Like.ListLikedVideos)
	likeRoutes.Post("/video/:videoID", h.Like.ToggleVideoLike)
	likeRoutes.Post("/comment/:commentID", h.Like.ToggleCommentLike)
	likeRoutes.Post("/tweet/:tweetID", h.Like.ToggleTweetLike)

	subscriptionRoutes := app.Group("/subscriptions")
	subscriptionRoutes.Get("/", auth, h.Subscription.ListSubscribedChannels)
	subscriptionRoutes.Post("/:channelID", auth, h.Subscription.ToggleSubscription)
	subscriptionRoutes.Get("/:channelID/subscribers", h.Subscription.ListSubscribers)

	playlistRoutes := app.Group("/playlists")
	playlistRoutes.Post("/", auth, h.Playlist.CreatePlaylist)
	playlistRoutes.Get("/member/:userID", h.Playlist.ListMemberPlaylists)
	playlistRoutes.Get("/:playlistID", h.Playlist.GetPlaylist)
	playlistRoutes.Patch("/:playlistID", auth, h.Playlist.UpdatePlaylist)
	playlistRoutes.Delete("/:playlistID", auth, h.Playlist.DeletePlaylist)
	playlistRoutes.Post("/:playlistID/videos/:videoID", auth, h.Playlist.AddVideo)
	playlistRoutes.Delete("/:playlistID/videos/:videoID", auth, h.Playlist.RemoveVideo)

	tweetRoutes := app.Group("/tweets")
	tweetRoutes.Post("/", auth, h.Tweet.CreateTweet)
	tweetRoutes.Get("/member/:userID", h.Tweet.ListMemberTweets)
	tweetRoutes.Patch("/:tweetID", auth, h.Tweet.UpdateTweet)
	tweetRoutes.Delete("/:tweetID", auth, h.Tweet.DeleteTweet)

	dashboardRoutes := app.Group("/dashboard", auth)
	dashboardRoutes.Get("/:channelID/stats", h.Dashboard.GetChannelStats)
	dashboardRoutes.Get("/:channelID/videos", h.Dashboard.ListChannelVideos)
}
