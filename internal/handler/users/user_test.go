package users

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"leaderboard/internal/api"
	"leaderboard/internal/cache"
	"leaderboard/internal/database"
	"leaderboard/internal/middleware"
	"leaderboard/internal/model"
	"leaderboard/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/require"
)

type stubValidator struct{ err error }

func (s *stubValidator) Validate(i interface{}) error { return s.err }

func newJSONCtx(e *echo.Echo, method, id, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/api/users/"+id, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if id != "" {
		c.SetPath("/api/users/:id")
		c.SetParamNames("id")
		c.SetParamValues(id)
	}
	return c, rec
}

func restore() {
	listUsers = store.ListUsers
	createUser = store.CreateUser
	getUserByID = store.GetUserByID
	updateUser = store.UpdateUser
	addUserPoints = store.AddUserPoints
	deleteUser = store.DeleteUser
	invalidateLatestWinner = cache.InvalidateLatestWinner
}

// trackInvalidate 記錄最新 winner 快取是否被清除
func trackInvalidate() *bool {
	dropped := false
	invalidateLatestWinner = func(context.Context, cache.Cache) error { dropped = true; return nil }
	return &dropped
}

func decodeFieldErrors(t *testing.T, rec *httptest.ResponseRecorder) api.FieldErrors {
	t.Helper()
	var out api.FieldErrors
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestListUsersHandler(t *testing.T) {
	e := echo.New()

	t.Run("store error", func(t *testing.T) {
		t.Cleanup(restore)
		listUsers = func(context.Context, database.DB) ([]model.User, error) { return nil, errors.New("down") }
		ctx, rec := newJSONCtx(e, http.MethodGet, "", "")
		require.NoError(t, ListUsersHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		listUsers = func(context.Context, database.DB) ([]model.User, error) {
			return []model.User{{ID: 2, Name: "b", Points: 9}, {ID: 1, Name: "a", Points: 3}}, nil
		}
		ctx, rec := newJSONCtx(e, http.MethodGet, "", "")
		require.NoError(t, ListUsersHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)

		var body api.UserListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, 2, body.Count)
		require.Equal(t, "b", body.Results[0].Name)
		require.Contains(t, rec.Body.String(), `"results":`)
	})
}

func TestCreateUserHandler(t *testing.T) {
	e := echo.New()
	e.Validator = api.NewValidator()

	t.Run("non integer age", func(t *testing.T) {
		t.Cleanup(restore)
		called := false
		createUser = func(context.Context, database.DB, *model.User) (*model.User, error) {
			called = true
			return nil, nil
		}
		ctx, rec := newJSONCtx(e, http.MethodPost, "", `{"name":"a","age":"old","address":"x"}`)
		require.NoError(t, CreateUserHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, decodeFieldErrors(t, rec), "age")
		require.False(t, called)
	})

	t.Run("missing fields", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newJSONCtx(e, http.MethodPost, "", `{"name":""}`)
		require.NoError(t, CreateUserHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		fields := decodeFieldErrors(t, rec)
		require.Contains(t, fields, "name")
		require.Contains(t, fields, "age")
		require.Contains(t, fields, "address")
	})

	t.Run("blank name and address", func(t *testing.T) {
		t.Cleanup(restore)
		called := false
		createUser = func(context.Context, database.DB, *model.User) (*model.User, error) {
			called = true
			return nil, nil
		}
		ctx, rec := newJSONCtx(e, http.MethodPost, "", `{"name":"   ","age":30,"address":""}`)
		require.NoError(t, CreateUserHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, api.FieldErrors{
			"name":    {"This field may not be blank."},
			"address": {"This field may not be blank."},
		}, decodeFieldErrors(t, rec))
		require.False(t, called)
	})

	t.Run("age out of integer range", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newJSONCtx(e, http.MethodPost, "", `{"name":"a","age":3000000000,"address":"x"}`)
		require.NoError(t, CreateUserHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, api.FieldErrors{"age": {"Ensure this value is less than or equal to 2147483647."}}, decodeFieldErrors(t, rec))
	})

	t.Run("name is trimmed", func(t *testing.T) {
		t.Cleanup(restore)
		createUser = func(_ context.Context, _ database.DB, u *model.User) (*model.User, error) {
			require.Equal(t, "Ann", u.Name)
			require.Equal(t, "road", u.Address)
			return u, nil
		}
		ctx, rec := newJSONCtx(e, http.MethodPost, "", `{"name":"  Ann ","age":33,"address":" road"}`)
		require.NoError(t, CreateUserHandler(nil)(ctx))
		require.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("create error", func(t *testing.T) {
		t.Cleanup(restore)
		createUser = func(context.Context, database.DB, *model.User) (*model.User, error) {
			return nil, errors.New("c")
		}
		ctx, rec := newJSONCtx(e, http.MethodPost, "", `{"name":"a","age":20,"address":"x"}`)
		require.NoError(t, CreateUserHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success defaults points to zero", func(t *testing.T) {
		t.Cleanup(restore)
		var got model.User
		createUser = func(_ context.Context, _ database.DB, u *model.User) (*model.User, error) {
			got = *u
			u.ID = 1
			return u, nil
		}
		ctx, rec := newJSONCtx(e, http.MethodPost, "", `{"name":"Ann","age":33,"address":"road"}`)
		require.NoError(t, CreateUserHandler(nil)(ctx))
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Equal(t, model.User{Name: "Ann", Age: 33, Address: "road"}, got)
		require.Contains(t, rec.Body.String(), `"id":1`)
	})

	t.Run("success with points", func(t *testing.T) {
		t.Cleanup(restore)
		createUser = func(_ context.Context, _ database.DB, u *model.User) (*model.User, error) {
			require.Equal(t, 15, u.Points)
			u.ID = 2
			return u, nil
		}
		ctx, rec := newJSONCtx(e, http.MethodPost, "", `{"name":"Ann","age":33,"address":"road","points":15}`)
		require.NoError(t, CreateUserHandler(nil)(ctx))
		require.Equal(t, http.StatusCreated, rec.Code)
	})
}

func TestGetUserHandler(t *testing.T) {
	e := echo.New()

	t.Run("non numeric id", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newJSONCtx(e, http.MethodGet, "x", "")
		require.NoError(t, GetUserHandler(nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		t.Cleanup(restore)
		getUserByID = func(context.Context, database.DB, int) (*model.User, error) {
			return nil, store.ErrNotFound
		}
		ctx, rec := newJSONCtx(e, http.MethodGet, "1", "")
		require.NoError(t, GetUserHandler(nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("store failure", func(t *testing.T) {
		t.Cleanup(restore)
		getUserByID = func(context.Context, database.DB, int) (*model.User, error) {
			return nil, errors.New("conn refused")
		}
		ctx, rec := newJSONCtx(e, http.MethodGet, "1", "")
		require.NoError(t, GetUserHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		getUserByID = func(_ context.Context, _ database.DB, id int) (*model.User, error) {
			return &model.User{ID: id, Name: "n", Age: 20, Address: "a", Points: 4}, nil
		}
		ctx, rec := newJSONCtx(e, http.MethodGet, "5", "")
		require.NoError(t, GetUserHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"id":5,"name":"n","age":20,"address":"a","points":4}`, rec.Body.String())
	})
}

func TestUpdateUserHandler(t *testing.T) {
	e := echo.New()
	e.Validator = api.NewValidator()
	body := `{"name":"A","age":40,"address":"b","points":7}`

	t.Run("non numeric id", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newJSONCtx(e, http.MethodPut, "x", body)
		require.NoError(t, UpdateUserHandler(nil, nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("validate error", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newJSONCtx(e, http.MethodPut, "1", `{"age":1,"address":"b"}`)
		require.NoError(t, UpdateUserHandler(nil, nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, api.FieldErrors{"name": {"This field is required."}}, decodeFieldErrors(t, rec))
	})

	t.Run("not found", func(t *testing.T) {
		t.Cleanup(restore)
		dropped := trackInvalidate()
		updateUser = func(context.Context, database.DB, *model.User, *int) (*model.User, error) {
			return nil, store.ErrNotFound
		}
		ctx, rec := newJSONCtx(e, http.MethodPut, "1", body)
		require.NoError(t, UpdateUserHandler(nil, nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.False(t, *dropped)
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		dropped := trackInvalidate()
		var got model.User
		var gotPoints *int
		updateUser = func(_ context.Context, _ database.DB, u *model.User, points *int) (*model.User, error) {
			got = *u
			gotPoints = points
			u.Points = *points
			return u, nil
		}
		ctx, rec := newJSONCtx(e, http.MethodPut, "2", body)
		require.NoError(t, UpdateUserHandler(nil, nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, model.User{ID: 2, Name: "A", Age: 40, Address: "b"}, got)
		require.NotNil(t, gotPoints)
		require.Equal(t, 7, *gotPoints)
		require.True(t, *dropped)
	})

	t.Run("absent points keeps stored score", func(t *testing.T) {
		t.Cleanup(restore)
		trackInvalidate()
		called := false
		updateUser = func(_ context.Context, _ database.DB, u *model.User, points *int) (*model.User, error) {
			called = true
			require.Nil(t, points)
			out := *u
			out.Points = 55
			return &out, nil
		}
		ctx, rec := newJSONCtx(e, http.MethodPut, "7", `{"name":"A","age":30,"address":"x"}`)
		require.NoError(t, UpdateUserHandler(nil, nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.True(t, called)
		require.Contains(t, rec.Body.String(), `"points":55`)
	})

	t.Run("cache failure still updates and logs request id", func(t *testing.T) {
		t.Cleanup(restore)
		e := echo.New()
		e.Validator = api.NewValidator()
		var logs bytes.Buffer
		e.Logger.SetOutput(&logs)
		e.Logger.SetLevel(log.WARN)

		invalidateLatestWinner = func(context.Context, cache.Cache) error { return errors.New("redis") }
		updateUser = func(_ context.Context, _ database.DB, u *model.User, _ *int) (*model.User, error) {
			return u, nil
		}
		ctx, rec := newJSONCtx(e, http.MethodPut, "2", body)
		ctx.Set(middleware.ContextRequestIDKey, "req-42")
		require.NoError(t, UpdateUserHandler(nil, nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, logs.String(), "[req-42] invalidate latest winner cache: redis")
	})
}

func TestDeleteUserHandler(t *testing.T) {
	e := echo.New()

	t.Run("not found", func(t *testing.T) {
		t.Cleanup(restore)
		deleteUser = func(context.Context, database.DB, int) error { return store.ErrNotFound }
		ctx, rec := newJSONCtx(e, http.MethodDelete, "3", "")
		require.NoError(t, DeleteUserHandler(nil, nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("error", func(t *testing.T) {
		t.Cleanup(restore)
		deleteUser = func(context.Context, database.DB, int) error { return errors.New("fk") }
		ctx, rec := newJSONCtx(e, http.MethodDelete, "3", "")
		require.NoError(t, DeleteUserHandler(nil, nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success invalidates latest winner", func(t *testing.T) {
		t.Cleanup(restore)
		var gotID int
		invalidated := false
		deleteUser = func(_ context.Context, _ database.DB, id int) error { gotID = id; return nil }
		invalidateLatestWinner = func(context.Context, cache.Cache) error { invalidated = true; return nil }
		ctx, rec := newJSONCtx(e, http.MethodDelete, "3", "")
		require.NoError(t, DeleteUserHandler(nil, nil)(ctx))
		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Equal(t, 3, gotID)
		require.True(t, invalidated)
	})

	t.Run("cache failure still deletes", func(t *testing.T) {
		t.Cleanup(restore)
		deleteUser = func(context.Context, database.DB, int) error { return nil }
		invalidateLatestWinner = func(context.Context, cache.Cache) error { return errors.New("redis") }
		ctx, rec := newJSONCtx(e, http.MethodDelete, "3", "")
		require.NoError(t, DeleteUserHandler(nil, nil)(ctx))
		require.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestUpdateScoreHandler(t *testing.T) {
	e := echo.New()
	e.Validator = api.NewValidator()

	t.Run("missing change", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newJSONCtx(e, http.MethodPatch, "1", `{}`)
		require.NoError(t, UpdateScoreHandler(nil, nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.JSONEq(t, `{"validation_errors":{"change":["This field is required."]}}`, rec.Body.String())
	})

	t.Run("non integer change", func(t *testing.T) {
		t.Cleanup(restore)
		called := false
		addUserPoints = func(context.Context, database.DB, int, int) (*model.User, error) {
			called = true
			return nil, nil
		}
		ctx, rec := newJSONCtx(e, http.MethodPatch, "1", `{"change":"five"}`)
		require.NoError(t, UpdateScoreHandler(nil, nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), `"validation_errors"`)
		require.Contains(t, rec.Body.String(), `"change"`)
		require.False(t, called)
	})

	t.Run("validator error", func(t *testing.T) {
		t.Cleanup(restore)
		e := echo.New()
		e.Validator = &stubValidator{err: errors.New("v")}
		ctx, rec := newJSONCtx(e, http.MethodPatch, "1", `{"change":1}`)
		require.NoError(t, UpdateScoreHandler(nil, nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		t.Cleanup(restore)
		addUserPoints = func(context.Context, database.DB, int, int) (*model.User, error) {
			return nil, store.ErrNotFound
		}
		ctx, rec := newJSONCtx(e, http.MethodPatch, "9", `{"change":1}`)
		require.NoError(t, UpdateScoreHandler(nil, nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("success drops cached latest winner", func(t *testing.T) {
		t.Cleanup(restore)
		dropped := trackInvalidate()
		addUserPoints = func(_ context.Context, _ database.DB, id int, change int) (*model.User, error) {
			return &model.User{ID: id, Points: change}, nil
		}
		ctx, rec := newJSONCtx(e, http.MethodPatch, "1", `{"change":3}`)
		require.NoError(t, UpdateScoreHandler(nil, nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.True(t, *dropped)
	})

	t.Run("sequential changes sum", func(t *testing.T) {
		t.Cleanup(restore)
		trackInvalidate()
		points := 10
		addUserPoints = func(_ context.Context, _ database.DB, id int, change int) (*model.User, error) {
			points += change
			return &model.User{ID: id, Points: points}, nil
		}
		for _, body := range []string{`{"change":5}`, `{"change":-3}`} {
			ctx, rec := newJSONCtx(e, http.MethodPatch, "1", body)
			require.NoError(t, UpdateScoreHandler(nil, nil)(ctx))
			require.Equal(t, http.StatusOK, rec.Code)
		}
		require.Equal(t, 12, points)
	})

	t.Run("zero change is valid", func(t *testing.T) {
		t.Cleanup(restore)
		trackInvalidate()
		addUserPoints = func(_ context.Context, _ database.DB, id int, change int) (*model.User, error) {
			require.Zero(t, change)
			return &model.User{ID: id, Points: -4}, nil
		}
		ctx, rec := newJSONCtx(e, http.MethodPatch, "1", `{"change":0}`)
		require.NoError(t, UpdateScoreHandler(nil, nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"points":-4`)
	})
}

func TestGroupedByScoreHandler(t *testing.T) {
	e := echo.New()

	t.Run("empty", func(t *testing.T) {
		t.Cleanup(restore)
		listUsers = func(context.Context, database.DB) ([]model.User, error) { return []model.User{}, nil }
		ctx, rec := newJSONCtx(e, http.MethodGet, "", "")
		require.NoError(t, GroupedByScoreHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{}`, rec.Body.String())
	})

	t.Run("grouped", func(t *testing.T) {
		t.Cleanup(restore)
		listUsers = func(context.Context, database.DB) ([]model.User, error) {
			return []model.User{
				{Name: "a", Age: 20, Points: 50},
				{Name: "b", Age: 35, Points: 50},
				{Name: "c", Age: 60, Points: 10},
			}, nil
		}
		ctx, rec := newJSONCtx(e, http.MethodGet, "", "")
		require.NoError(t, GroupedByScoreHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t,
			`{"50":{"names":["a","b"],"average_age":27},"10":{"names":["c"],"average_age":60}}`,
			strings.TrimSpace(rec.Body.String()))
	})

	t.Run("store error", func(t *testing.T) {
		t.Cleanup(restore)
		listUsers = func(context.Context, database.DB) ([]model.User, error) { return nil, errors.New("x") }
		ctx, rec := newJSONCtx(e, http.MethodGet, "", "")
		require.NoError(t, GroupedByScoreHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
