package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/BloggingApp/blog-client/internal/api"
	"github.com/BloggingApp/blog-client/internal/dto"
	"github.com/BloggingApp/blog-client/internal/model"
	"github.com/BloggingApp/blog-client/internal/session"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const (
	adminToken = "admin-token"
	userToken  = "user-token"
)

var (
	adminCredential = model.Credential{ID: "admin", Token: adminToken, IsAdmin: true, IsVerified: true, FirstName: "Ada", LastName: "Admin", Email: "admin@example.com"}
	userCredential  = model.Credential{ID: "u1", Token: userToken, FirstName: "Bob", LastName: "User", Email: "bob@example.com"}
)

// fakeAPI is an in-memory stand-in for the blog REST API.
type fakeAPI struct {
	mu         sync.Mutex
	nextID     int
	categories []*model.Category
	posts      map[string]*model.Post
	comments   map[string]*model.Comment
	users      map[string]*model.User
	calls      []string
	auths      []string
	uploads    map[string]string
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		posts:    make(map[string]*model.Post),
		comments: make(map[string]*model.Comment),
		users: map[string]*model.User{
			"admin": {ID: "admin", FirstName: "Ada", IsAdmin: true},
			"u1":    {ID: "u1", FirstName: "Bob"},
			"u2":    {ID: "u2", FirstName: "Carol"},
		},
		uploads: make(map[string]string),
	}
}

func (f *fakeAPI) id(prefix string) string {
	f.nextID++
	return fmt.Sprintf("%s%d", prefix, f.nextID)
}

func (f *fakeAPI) callCount(call string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == call {
			n++
		}
	}
	return n
}

func (f *fakeAPI) lastAuth() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.auths) == 0 {
		return ""
	}
	return f.auths[len(f.auths)-1]
}

func reject(w http.ResponseWriter, code int, message string) {
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(dto.ErrorResponse{Message: message})
}

func respond(w http.ResponseWriter, v interface{}) {
	json.NewEncoder(w).Encode(v)
}

// caller resolves the bearer token to a user id; "" means anonymous.
func caller(r *http.Request) string {
	switch strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ") {
	case adminToken:
		return "admin"
	case userToken:
		return "u1"
	}
	return ""
}

func (f *fakeAPI) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.calls = append(f.calls, r.Method+" "+r.URL.Path)
		f.auths = append(f.auths, r.Header.Get("Authorization"))
		f.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (f *fakeAPI) authed(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if caller(r) == "" {
			reject(w, http.StatusUnauthorized, "Not authorized, token expired")
			return
		}
		next(w, r)
	}
}

func (f *fakeAPI) admin(next http.HandlerFunc) http.HandlerFunc {
	return f.authed(func(w http.ResponseWriter, r *http.Request) {
		if caller(r) != "admin" {
			reject(w, http.StatusForbidden, "You are not an admin")
			return
		}
		next(w, r)
	})
}

func (f *fakeAPI) routes() *mux.Router {
	router := mux.NewRouter()
	router.Use(f.record)

	router.HandleFunc("/api/users/register", f.register).Methods("POST")
	router.HandleFunc("/api/users/login", f.login).Methods("POST")
	router.HandleFunc("/api/users", f.authed(f.listUsers)).Methods("GET")
	router.HandleFunc("/api/users", f.authed(f.updateUser)).Methods("PUT")
	router.HandleFunc("/api/users/password", f.authed(f.updatePassword)).Methods("PUT")
	router.HandleFunc("/api/users/follow", f.authed(f.follow)).Methods("PUT")
	router.HandleFunc("/api/users/unfollow", f.authed(f.unfollow)).Methods("PUT")
	router.HandleFunc("/api/users/profile/{id}", f.authed(f.getUser)).Methods("GET")
	router.HandleFunc("/api/users/profile-photo-upload", f.authed(f.uploadPhoto)).Methods("PUT")
	router.HandleFunc("/api/users/block-user/{id}", f.admin(f.block(true))).Methods("PUT")
	router.HandleFunc("/api/users/unblock-user/{id}", f.admin(f.block(false))).Methods("PUT")
	router.HandleFunc("/api/users/forget-password-token", f.passwordToken).Methods("POST")
	router.HandleFunc("/api/users/reset-password", f.resetPassword).Methods("PUT")
	router.HandleFunc("/api/users/generate-verify-email-token", f.authed(f.verifyToken)).Methods("POST")
	router.HandleFunc("/api/users/verify-account", f.authed(f.verifyAccount)).Methods("PUT")
	router.HandleFunc("/api/users/{id}", f.getUser).Methods("GET")

	router.HandleFunc("/api/category", f.admin(f.createCategory)).Methods("POST")
	router.HandleFunc("/api/category", f.authed(f.listCategories)).Methods("GET")
	router.HandleFunc("/api/category/{id}", f.authed(f.getCategory)).Methods("GET")
	router.HandleFunc("/api/category/{id}", f.admin(f.updateCategory)).Methods("PUT")
	router.HandleFunc("/api/category/{id}", f.admin(f.deleteCategory)).Methods("DELETE")

	router.HandleFunc("/api/posts", f.authed(f.createPost)).Methods("POST")
	router.HandleFunc("/api/posts", f.listPosts).Methods("GET")
	router.HandleFunc("/api/posts/likes", f.authed(f.toggle(true))).Methods("PUT")
	router.HandleFunc("/api/posts/unLikes", f.authed(f.toggle(false))).Methods("PUT")
	router.HandleFunc("/api/posts/{id}", f.getPost).Methods("GET")
	router.HandleFunc("/api/posts/{id}", f.authed(f.updatePost)).Methods("PUT")
	router.HandleFunc("/api/posts/{id}", f.authed(f.deletePost)).Methods("DELETE")

	router.HandleFunc("/api/comments", f.authed(f.createComment)).Methods("POST")
	router.HandleFunc("/api/comments/{id}", f.authed(f.getComment)).Methods("GET")
	router.HandleFunc("/api/comments/{id}", f.authed(f.updateComment)).Methods("PUT")
	router.HandleFunc("/api/comments/{id}", f.authed(f.deleteComment)).Methods("DELETE")

	router.HandleFunc("/api/email", f.authed(f.sendMail)).Methods("POST")

	return router
}

func (f *fakeAPI) register(w http.ResponseWriter, r *http.Request) {
	var input dto.RegisterRequest
	json.NewDecoder(r.Body).Decode(&input)
	if input.Email == "bob@example.com" {
		reject(w, http.StatusBadRequest, "User already exists")
		return
	}
	f.mu.Lock()
	user := &model.User{ID: f.id("u"), FirstName: input.FirstName, LastName: input.LastName, Email: input.Email}
	f.users[user.ID] = user
	f.mu.Unlock()
	respond(w, user)
}

func (f *fakeAPI) login(w http.ResponseWriter, r *http.Request) {
	var input dto.LoginRequest
	json.NewDecoder(r.Body).Decode(&input)
	switch {
	case input.Email == adminCredential.Email && input.Password == "secret":
		respond(w, adminCredential)
	case input.Email == userCredential.Email && input.Password == "secret":
		respond(w, userCredential)
	default:
		reject(w, http.StatusUnauthorized, "Invalid Login Credentials")
	}
}

func (f *fakeAPI) listUsers(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	users := []*model.User{f.users["admin"], f.users["u1"], f.users["u2"]}
	respond(w, users)
}

func (f *fakeAPI) getUser(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[mux.Vars(r)["id"]]
	if !ok {
		reject(w, http.StatusNotFound, "User not found")
		return
	}
	respond(w, user)
}

func (f *fakeAPI) updateUser(w http.ResponseWriter, r *http.Request) {
	var input dto.UpdateProfileRequest
	json.NewDecoder(r.Body).Decode(&input)
	f.mu.Lock()
	defer f.mu.Unlock()
	user := f.users[caller(r)]
	user.FirstName, user.LastName, user.Email, user.Bio = input.FirstName, input.LastName, input.Email, input.Bio
	respond(w, user)
}

func (f *fakeAPI) updatePassword(w http.ResponseWriter, r *http.Request) {
	var input dto.UpdatePasswordRequest
	json.NewDecoder(r.Body).Decode(&input)
	if len(input.Password) < 6 {
		reject(w, http.StatusBadRequest, "Password too short")
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	respond(w, f.users[caller(r)])
}

func (f *fakeAPI) follow(w http.ResponseWriter, r *http.Request) {
	var input dto.FollowRequest
	json.NewDecoder(r.Body).Decode(&input)
	f.mu.Lock()
	defer f.mu.Unlock()
	target, ok := f.users[input.FollowID]
	if !ok {
		reject(w, http.StatusNotFound, "User not found")
		return
	}
	target.Followers = append(target.Followers, caller(r))
	respond(w, target)
}

func (f *fakeAPI) unfollow(w http.ResponseWriter, r *http.Request) {
	var input dto.UnfollowRequest
	json.NewDecoder(r.Body).Decode(&input)
	f.mu.Lock()
	defer f.mu.Unlock()
	target, ok := f.users[input.UnFollowID]
	if !ok {
		reject(w, http.StatusNotFound, "User not found")
		return
	}
	target.Followers = nil
	respond(w, target)
}

func (f *fakeAPI) uploadPhoto(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("image")
	if err != nil {
		reject(w, http.StatusBadRequest, "No file")
		return
	}
	defer file.Close()
	content, _ := io.ReadAll(file)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploads[header.Filename] = string(content)
	user := f.users[caller(r)]
	user.ProfilePhoto = "https://cdn.example.com/" + header.Filename
	respond(w, user)
}

func (f *fakeAPI) block(blocked bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		user, ok := f.users[mux.Vars(r)["id"]]
		if !ok {
			reject(w, http.StatusNotFound, "User not found")
			return
		}
		user.IsBlocked = blocked
		respond(w, user)
	}
}

func (f *fakeAPI) passwordToken(w http.ResponseWriter, r *http.Request) {
	var input dto.PasswordResetTokenRequest
	json.NewDecoder(r.Body).Decode(&input)
	respond(w, map[string]string{"msg": "A verification message is successfully sent to " + input.Email})
}

func (f *fakeAPI) resetPassword(w http.ResponseWriter, r *http.Request) {
	var input dto.PasswordResetRequest
	json.NewDecoder(r.Body).Decode(&input)
	if input.Password == "" || input.ResetToken == "" {
		reject(w, http.StatusBadRequest, "Password or reset token is undefined")
		return
	}
	respond(w, map[string]string{"_id": "u1"})
}

func (f *fakeAPI) verifyToken(w http.ResponseWriter, r *http.Request) {
	respond(w, "verification-token")
}

func (f *fakeAPI) verifyAccount(w http.ResponseWriter, r *http.Request) {
	var input dto.VerifyAccountRequest
	json.NewDecoder(r.Body).Decode(&input)
	if input.Token != "verification-token" {
		reject(w, http.StatusBadRequest, "Token expired, try again later")
		return
	}
	respond(w, map[string]interface{}{"_id": caller(r), "isAccountVerified": true})
}

func (f *fakeAPI) createCategory(w http.ResponseWriter, r *http.Request) {
	var input dto.CategoryRequest
	json.NewDecoder(r.Body).Decode(&input)
	if input.Title == "" {
		reject(w, http.StatusBadRequest, "Enter a category")
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	category := &model.Category{ID: f.id("c"), Title: input.Title}
	f.categories = append(f.categories, category)
	respond(w, category)
}

func (f *fakeAPI) listCategories(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	respond(w, f.categories)
}

func (f *fakeAPI) findCategory(id string) (int, *model.Category) {
	for i, c := range f.categories {
		if c.ID == id {
			return i, c
		}
	}
	return -1, nil
}

func (f *fakeAPI) getCategory(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, category := f.findCategory(mux.Vars(r)["id"])
	if category == nil {
		reject(w, http.StatusNotFound, "Category not found")
		return
	}
	respond(w, category)
}

func (f *fakeAPI) updateCategory(w http.ResponseWriter, r *http.Request) {
	var input dto.CategoryRequest
	json.NewDecoder(r.Body).Decode(&input)
	f.mu.Lock()
	defer f.mu.Unlock()
	_, category := f.findCategory(mux.Vars(r)["id"])
	if category == nil {
		reject(w, http.StatusNotFound, "Category not found")
		return
	}
	category.Title = input.Title
	respond(w, category)
}

func (f *fakeAPI) deleteCategory(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i, category := f.findCategory(mux.Vars(r)["id"])
	if category == nil {
		reject(w, http.StatusNotFound, "Category not found")
		return
	}
	f.categories = append(f.categories[:i], f.categories[i+1:]...)
	respond(w, category)
}

func (f *fakeAPI) createPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(1 << 20); err != nil {
		reject(w, http.StatusBadRequest, "Expected multipart form")
		return
	}
	post := &model.Post{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Category:    r.FormValue("category"),
	}
	if post.Title == "" {
		reject(w, http.StatusBadRequest, "Title is required")
		return
	}
	if file, header, err := r.FormFile("image"); err == nil {
		content, _ := io.ReadAll(file)
		file.Close()
		f.mu.Lock()
		f.uploads[header.Filename] = string(content)
		f.mu.Unlock()
		post.Image = "https://cdn.example.com/" + header.Filename
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	post.ID = f.id("p")
	post.Author = f.users[caller(r)]
	f.posts[post.ID] = post
	respond(w, post)
}

func (f *fakeAPI) listPosts(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	f.mu.Lock()
	defer f.mu.Unlock()
	posts := []*model.Post{}
	for i := 1; i <= f.nextID; i++ {
		post, ok := f.posts[fmt.Sprintf("p%d", i)]
		if ok && (category == "" || post.Category == category) {
			posts = append(posts, post)
		}
	}
	respond(w, posts)
}

func (f *fakeAPI) getPost(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	post, ok := f.posts[mux.Vars(r)["id"]]
	if !ok {
		reject(w, http.StatusNotFound, "Post not found")
		return
	}
	post.NumViews++
	respond(w, post)
}

func (f *fakeAPI) updatePost(w http.ResponseWriter, r *http.Request) {
	var input dto.UpdatePostRequest
	json.NewDecoder(r.Body).Decode(&input)
	f.mu.Lock()
	defer f.mu.Unlock()
	post, ok := f.posts[mux.Vars(r)["id"]]
	if !ok {
		reject(w, http.StatusNotFound, "Post not found")
		return
	}
	post.Title, post.Description = input.Title, input.Description
	respond(w, post)
}

func (f *fakeAPI) deletePost(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := mux.Vars(r)["id"]
	post, ok := f.posts[id]
	if !ok {
		reject(w, http.StatusNotFound, "Post not found")
		return
	}
	delete(f.posts, id)
	respond(w, post)
}

func toggleMember(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i:i], ids[i+1:]...)
		}
	}
	return append(ids, id)
}

func removeMember(ids []string, id string) []string {
	out := []string{}
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

func (f *fakeAPI) toggle(like bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input dto.PostIDRequest
		json.NewDecoder(r.Body).Decode(&input)
		f.mu.Lock()
		defer f.mu.Unlock()
		post, ok := f.posts[input.PostID]
		if !ok {
			reject(w, http.StatusNotFound, "Post not found")
			return
		}
		user := caller(r)
		if like {
			post.UnLikes = removeMember(post.UnLikes, user)
			post.Likes = toggleMember(post.Likes, user)
		} else {
			post.Likes = removeMember(post.Likes, user)
			post.UnLikes = toggleMember(post.UnLikes, user)
		}
		respond(w, post)
	}
}

func (f *fakeAPI) createComment(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateCommentRequest
	json.NewDecoder(r.Body).Decode(&input)
	if input.Description == "" {
		reject(w, http.StatusBadRequest, "Description is required")
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	comment := &model.Comment{ID: f.id("m"), Description: input.Description, PostID: input.PostID, Author: f.users[caller(r)]}
	f.comments[comment.ID] = comment
	respond(w, comment)
}

func (f *fakeAPI) getComment(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	comment, ok := f.comments[mux.Vars(r)["id"]]
	if !ok {
		reject(w, http.StatusNotFound, "Comment not found")
		return
	}
	respond(w, comment)
}

func (f *fakeAPI) updateComment(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Description string `json:"description"`
	}
	json.NewDecoder(r.Body).Decode(&input)
	f.mu.Lock()
	defer f.mu.Unlock()
	comment, ok := f.comments[mux.Vars(r)["id"]]
	if !ok {
		reject(w, http.StatusNotFound, "Comment not found")
		return
	}
	if comment.Author == nil || comment.Author.ID != caller(r) {
		reject(w, http.StatusForbidden, "You can only edit your own comments")
		return
	}
	comment.Description = input.Description
	respond(w, comment)
}

func (f *fakeAPI) deleteComment(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := mux.Vars(r)["id"]
	if _, ok := f.comments[id]; !ok {
		reject(w, http.StatusNotFound, "Comment not found")
		return
	}
	delete(f.comments, id)
	w.WriteHeader(http.StatusNoContent)
}

func (f *fakeAPI) sendMail(w http.ResponseWriter, r *http.Request) {
	var input dto.SendMailRequest
	json.NewDecoder(r.Body).Decode(&input)
	if input.RecipientEmail == "" {
		reject(w, http.StatusBadRequest, "Recipient is required")
		return
	}
	respond(w, map[string]interface{}{"sentBy": caller(r), "to": input.RecipientEmail, "isSent": true})
}

// newTestStore wires a store to a fresh fake API. credential, when not nil,
// is put in storage before the store bootstraps.
func newTestStore(t *testing.T, credential *model.Credential) (*Store, *fakeAPI, session.Storage) {
	t.Helper()
	fake := newFakeAPI()
	srv := httptest.NewServer(fake.routes())
	t.Cleanup(srv.Close)

	storage := session.NewMemory()
	if credential != nil {
		if err := session.Persist(context.Background(), storage, *credential); err != nil {
			t.Fatalf("Persist: %v", err)
		}
	}

	client := api.New(zap.NewNop(), srv.URL, 5*time.Second)
	return New(context.Background(), zap.NewNop(), client, storage), fake, storage
}

// gateExecutor holds every call until the test releases it, so tests
// control the order in which dispatches resolve.
type gateExecutor struct {
	mu      sync.Mutex
	started chan api.Op
	gates   map[string]chan result
}

type result struct {
	data json.RawMessage
	err  error
}

func newGateExecutor() *gateExecutor {
	return &gateExecutor{
		started: make(chan api.Op, 16),
		gates:   make(map[string]chan result),
	}
}

func gateKey(op api.Op) string {
	return op.Method + " " + op.Path + "?" + op.Query.Encode()
}

func (g *gateExecutor) gate(key string) chan result {
	g.mu.Lock()
	defer g.mu.Unlock()
	ch, ok := g.gates[key]
	if !ok {
		ch = make(chan result, 1)
		g.gates[key] = ch
	}
	return ch
}

func (g *gateExecutor) Do(ctx context.Context, op api.Op) (json.RawMessage, error) {
	ch := g.gate(gateKey(op))
	g.started <- op
	r := <-ch
	return r.data, r.err
}

func (g *gateExecutor) release(key string, data string, err error) {
	g.gate(key) <- result{data: json.RawMessage(data), err: err}
}

func (g *gateExecutor) waitStarted(t *testing.T) api.Op {
	t.Helper()
	select {
	case op := <-g.started:
		return op
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a call to start")
	}
	return api.Op{}
}

func newGatedStore(t *testing.T) (*Store, *gateExecutor) {
	t.Helper()
	gate := newGateExecutor()
	return New(context.Background(), zap.NewNop(), gate, session.NewMemory()), gate
}

func strPtr(s string) *string { return &s }
