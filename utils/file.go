package utils

import (
	"archive/zip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	FILE_EXT_TIF  = ".tif"
	FILE_EXT_TIFF = ".tiff"
)

var (
	ErrNoTifInZip = errors.New("no tif in zip")
	ErrBadZipPath = errors.New("bad path in zip")
)

func GetUniqSubDir(parentPath string) (path string, err error) {
	path = filepath.Join(parentPath, uuid.NewString())
	err = os.Mkdir(path, os.ModePerm)
	return
}

func GetFilenameWithoutExt(path string) (name string) {
	name = filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(path))
	return
}

// 解压zip到目标目录，返回解出的文件列表
func Unzip(zipFile, dstDir string) (files []string, err error) {
	reader, err := zip.OpenReader(zipFile)
	if err != nil {
		return
	}
	defer reader.Close()
	for _, f := range reader.File {
		path := filepath.Join(dstDir, f.Name)
		if !strings.HasPrefix(path, filepath.Clean(dstDir)+string(os.PathSeparator)) {
			err = ErrBadZipPath
			return
		}
		if f.FileInfo().IsDir() {
			if err = os.MkdirAll(path, os.ModePerm); err != nil {
				return
			}
			continue
		}
		if err = os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
			return
		}
		var (
			in  io.ReadCloser
			out *os.File
		)
		if in, err = f.Open(); err != nil {
			return
		}
		if out, err = os.Create(path); err != nil {
			in.Close()
			return
		}
		_, err = io.Copy(out, in)
		in.Close()
		out.Close()
		if err != nil {
			return
		}
		files = append(files, path)
	}
	return
}

// 解压数据集zip并定位其中的tif，成功后删除zip
func GetTifInZip(zipFile, dstDir string) (path string, err error) {
	files, err := Unzip(zipFile, dstDir)
	if err != nil {
		return
	}
	os.Remove(zipFile)
	for _, file := range files {
		ext := strings.ToLower(filepath.Ext(file))
		if ext == FILE_EXT_TIF || ext == FILE_EXT_TIFF {
			path = file
			return
		}
	}
	err = ErrNoTifInZip
	return
}
