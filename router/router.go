package router

import (
	"net/http"

	"github.com/Prasanth-1011/Blog-System/common"
	"github.com/Prasanth-1011/Blog-System/handler"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/Prasanth-1011/Blog-System/docs"
)

func NewRouter(
	authHandler *handler.AuthHandler,
	blogHandler *handler.BlogHandler,
	categoryHandler *handler.CategoryHandler,
	commentHandler *handler.CommentHandler,
	userHandler *handler.UserHandler,
	adminHandler *handler.AdminHandler,
) http.Handler {
	mux := http.NewServeMux()

	// authed wraps a handler with token authentication and error handling.
	authed := func(h func(http.ResponseWriter, *http.Request) *common.AppError) http.Handler {
		return handler.AuthMiddleware(handler.ErrorHandlingMiddleware(h))
	}
	adminOnly := func(h func(http.ResponseWriter, *http.Request) *common.AppError) http.Handler {
		return handler.AuthMiddleware(handler.AdminMiddleware(handler.ErrorHandlingMiddleware(h)))
	}
	rootOnly := func(h func(http.ResponseWriter, *http.Request) *common.AppError) http.Handler {
		return handler.AuthMiddleware(handler.RootMiddleware(handler.ErrorHandlingMiddleware(h)))
	}

	// Auth
	mux.Handle("POST /api/auth/register", handler.ErrorHandlingMiddleware(authHandler.Register))
	mux.Handle("POST /api/auth/login", handler.ErrorHandlingMiddleware(authHandler.Login))
	mux.Handle("GET /api/auth/me", authed(authHandler.Me))
	mux.Handle("PUT /api/auth/profile", authed(authHandler.UpdateProfile))

	// Blogs. The drafts route is registered before the {id} route only for
	// readability; the mux picks the most specific pattern either way.
	mux.Handle("GET /api/blogs", handler.ErrorHandlingMiddleware(blogHandler.ListBlogs))
	mux.Handle("GET /api/blogs/drafts/mine", authed(blogHandler.ListDrafts))
	mux.Handle("GET /api/blogs/{id}", handler.ErrorHandlingMiddleware(blogHandler.GetBlog))
	mux.Handle("POST /api/blogs", authed(blogHandler.CreateBlog))
	mux.Handle("PUT /api/blogs/{id}", authed(blogHandler.UpdateBlog))
	mux.Handle("DELETE /api/blogs/{id}", authed(blogHandler.DeleteBlog))
	mux.Handle("PUT /api/blogs/{id}/like", authed(blogHandler.ToggleLike))
	mux.Handle("PUT /api/blogs/{id}/bookmark", authed(blogHandler.ToggleBookmark))

	// Categories
	mux.Handle("GET /api/categories", handler.ErrorHandlingMiddleware(categoryHandler.ListCategories))
	mux.Handle("GET /api/categories/{id}", handler.ErrorHandlingMiddleware(categoryHandler.GetCategory))
	mux.Handle("POST /api/categories", adminOnly(categoryHandler.CreateCategory))
	mux.Handle("PUT /api/categories/{id}", adminOnly(categoryHandler.UpdateCategory))
	mux.Handle("DELETE /api/categories/{id}", adminOnly(categoryHandler.DeleteCategory))

	// Comments
	mux.Handle("GET /api/comments/blog/{blogId}", handler.ErrorHandlingMiddleware(commentHandler.ListBlogComments))
	mux.Handle("GET /api/comments/{id}/replies", handler.ErrorHandlingMiddleware(commentHandler.ListReplies))
	mux.Handle("POST /api/comments", authed(commentHandler.CreateComment))
	mux.Handle("PUT /api/comments/{id}", authed(commentHandler.UpdateComment))
	mux.Handle("DELETE /api/comments/{id}", authed(commentHandler.DeleteComment))
	mux.Handle("PUT /api/comments/{id}/like", authed(commentHandler.ToggleLike))

	// Users
	mux.Handle("GET /api/users/profile/{id}", handler.ErrorHandlingMiddleware(userHandler.GetProfile))
	mux.Handle("GET /api/users/{id}/blogs", handler.ErrorHandlingMiddleware(userHandler.ListUserBlogs))
	mux.Handle("GET /api/users/bookmarks", authed(userHandler.ListBookmarks))

	// Admin. Any authenticated user may submit a request; only admins can
	// browse them and only root can decide them.
	mux.Handle("GET /api/admin/dashboard", adminOnly(adminHandler.GetDashboard))
	mux.Handle("GET /api/admin/users", adminOnly(adminHandler.ListUsers))
	mux.Handle("PUT /api/admin/users/{id}/status", adminOnly(adminHandler.UpdateUserStatus))
	mux.Handle("GET /api/admin/blogs", adminOnly(adminHandler.ListAllBlogs))
	mux.Handle("PUT /api/admin/blogs/{id}/status", adminOnly(adminHandler.UpdateBlogStatus))
	mux.Handle("POST /api/admin/requests", authed(adminHandler.SubmitRequest))
	mux.Handle("GET /api/admin/requests", adminOnly(adminHandler.ListRequests))
	mux.Handle("PUT /api/admin/requests/{id}/review", rootOnly(adminHandler.ReviewRequest))

	mux.HandleFunc("GET /health", handler.HealthCheck)
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
