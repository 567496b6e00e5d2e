package utils

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"
)

// 下载进度：已知总长时打印百分比，未知时打印累计字节数
type progressWriter struct {
	out     io.Writer
	total   int64
	written int64
	last    time.Time
}

func (p *progressWriter) Write(b []byte) (int, error) {
	p.written += int64(len(b))
	if time.Since(p.last) >= 200*time.Millisecond {
		p.print()
		p.last = time.Now()
	}
	return len(b), nil
}

func (p *progressWriter) print() {
	if p.total > 0 {
		fmt.Fprintf(p.out, "\rdownloading... %3d%%", p.written*100/p.total)
	} else {
		fmt.Fprintf(p.out, "\rdownloading... %dMB", p.written>>20)
	}
}

func IsValidUrl(uri string) bool {
	u, err := url.Parse(uri)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// 下载url到dst文件，dst已存在时直接跳过；先写入.part临时文件，完成后改名
func DownloadFile(uri, dst string) (err error) {
	if _, err = os.Stat(dst); err == nil {
		return
	}
	res, err := http.Get(uri)
	if err != nil {
		return
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		err = fmt.Errorf("download %s failed: %s", uri, res.Status)
		return
	}
	part := dst + ".part"
	out, err := os.Create(part)
	if err != nil {
		return
	}
	pw := &progressWriter{out: os.Stderr, total: res.ContentLength}
	_, err = io.Copy(out, io.TeeReader(res.Body, pw))
	out.Close()
	fmt.Fprintln(os.Stderr)
	if err != nil {
		os.Remove(part)
		return
	}
	err = os.Rename(part, dst)
	return
}
