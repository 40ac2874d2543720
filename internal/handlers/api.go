package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookshelf-api/internal/dto"
	"bookshelf-api/internal/services"
)

const Version = "1.0.0"

func SetupRouter(shelf *services.Bookshelf, logger *slog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(RequestID(), AccessLog(logger), Recovery(logger), CORS())

	books := router.Group("/books")
	{
		books.POST("", func(c *gin.Context) {
			var req dto.CreateBookRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, dto.Fail("Failed to add book. Invalid request body"))
				return
			}

			bookID, err := shelf.AddBook(req)
			if err != nil {
				var verr *services.ValidationError
				if errors.As(err, &verr) {
					c.JSON(http.StatusBadRequest, dto.Fail("Failed to add book. "+verr.Reason))
					return
				}
				requestLogger(c, logger).Error("add book", slog.Any("error", err))
				c.JSON(http.StatusInternalServerError, dto.Error("Book could not be added due to a server error"))
				return
			}

			c.JSON(http.StatusCreated, dto.Success("Book added successfully", dto.BookIDData{BookID: bookID}))
		})

		books.GET("", func(c *gin.Context) {
			var query dto.ListBooksQuery
			if err := c.ShouldBindQuery(&query); err != nil {
				requestLogger(c, logger).Error("bind list query", slog.Any("error", err))
				c.JSON(http.StatusInternalServerError, dto.Error("Failed to list books due to a server error"))
				return
			}

			c.JSON(http.StatusOK, dto.Success("", dto.BooksData{Books: shelf.ListBooks(query)}))
		})

		books.GET("/:id", func(c *gin.Context) {
			book, err := shelf.GetBook(c.Param("id"))
			if err != nil {
				if errors.Is(err, services.ErrBookNotFound) {
					c.JSON(http.StatusNotFound, dto.Fail("Book not found"))
					return
				}
				requestLogger(c, logger).Error("get book", slog.Any("error", err))
				c.JSON(http.StatusInternalServerError, dto.Error("Failed to show book details due to a server error"))
				return
			}

			c.JSON(http.StatusOK, dto.Success("", dto.BookData{Book: book}))
		})

		books.PUT("/:id", func(c *gin.Context) {
			id := c.Param("id")

			var req dto.UpdateBookRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				// An unknown id is reported before anything about the payload.
				if _, gerr := shelf.GetBook(id); errors.Is(gerr, services.ErrBookNotFound) {
					c.JSON(http.StatusNotFound, dto.Fail("Failed to update book. Id not found"))
					return
				}
				c.JSON(http.StatusBadRequest, dto.Fail("Failed to update book. Invalid request body"))
				return
			}

			err := shelf.UpdateBook(id, req)
			if err != nil {
				var verr *services.ValidationError
				switch {
				case errors.Is(err, services.ErrBookNotFound):
					c.JSON(http.StatusNotFound, dto.Fail("Failed to update book. Id not found"))
				case errors.As(err, &verr):
					c.JSON(http.StatusBadRequest, dto.Fail("Failed to update book. "+verr.Reason))
				default:
					requestLogger(c, logger).Error("update book", slog.Any("error", err))
					c.JSON(http.StatusInternalServerError, dto.Error("Book could not be updated due to a server error"))
				}
				return
			}

			c.JSON(http.StatusOK, dto.Success("Book updated successfully", nil))
		})

		books.DELETE("/:id", func(c *gin.Context) {
			err := shelf.DeleteBook(c.Param("id"))
			if err != nil {
				if errors.Is(err, services.ErrBookNotFound) {
					c.JSON(http.StatusNotFound, dto.Fail("Failed to delete book. Id not found"))
					return
				}
				requestLogger(c, logger).Error("delete book", slog.Any("error", err))
				c.JSON(http.StatusInternalServerError, dto.Error("Book could not be deleted due to a server error"))
				return
			}

			c.JSON(http.StatusOK, dto.Success("Book deleted successfully", nil))
		})
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.Success("Bookshelf API is running", gin.H{
			"version": Version,
			"books":   shelf.Count(),
		}))
	})

	return router
}
