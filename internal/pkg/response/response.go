package response

import "github.com/gin-gonic/gin"

// PageRef points at an adjacent result page.
type PageRef struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Pagination carries optional next/prev references for list endpoints.
type Pagination struct {
	Next *PageRef `json:"next,omitempty"`
	Prev *PageRef `json:"prev,omitempty"`
}

// Paginate computes next/prev for a page over total items. Returns nil
// when everything fits on one page.
func Paginate(page, limit, total int) *Pagination {
	if limit <= 0 {
		return nil
	}
	p := &Pagination{}
	if page > 1 {
		p.Prev = &PageRef{Page: page - 1, Limit: limit}
	}
	if page*limit < total {
		p.Next = &PageRef{Page: page + 1, Limit: limit}
	}
	if p.Next == nil && p.Prev == nil {
		return nil
	}
	return p
}

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

// List is Success plus the total/pagination fields of the list envelope.
func List(c *gin.Context, statusCode int, data interface{}, total int, pagination *Pagination) {
	body := gin.H{
		"success": true,
		"data":    data,
		"total":   total,
	}
	if pagination != nil {
		body["pagination"] = pagination
	}
	c.JSON(statusCode, body)
}

// Auth is the login/register envelope: the token rides beside the user.
func Auth(c *gin.Context, statusCode int, token string, user interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"token":   token,
		"data":    user,
	})
}

func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"message": message,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}
